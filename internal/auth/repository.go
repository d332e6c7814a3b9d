package auth

import (
	"context"
	"errors"

	"ImpactFlow/internal/models"
	"ImpactFlow/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

type UserRepository struct {
	collection *store.Collection[models.User]
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{collection: store.NewCollection[models.User](s, models.UserCollection)}
}

// FindByEmail returns nil, nil when no user has that email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByID returns nil, nil for unknown or malformed identifiers.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user, err := r.collection.FindOne(ctx, filter)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// CreateUser returns store.ErrDuplicateKey when the email index rejects the insert.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return r.collection.Insert(ctx, user)
}
