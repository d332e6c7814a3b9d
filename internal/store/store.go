// Package store is the document store adapter: insert and exact-match list
// over named Mongo collections.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrStoreUnavailable means there is no usable database connection.
	ErrStoreUnavailable = errors.New("database not available")
	// ErrDuplicateKey means an insert violated a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by FindOne when nothing matches.
	ErrNotFound = errors.New("document not found")
)

// Store is safe for concurrent use; the driver pools connections internally.
type Store struct {
	db  *mongo.Database
	log *zap.Logger

	mu      sync.Mutex
	pending []uniqueIndex
}

// New wraps db. A nil db yields a store whose every call fails with
// ErrStoreUnavailable.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{db: db, log: logger.Named("store")}
}

func (s *Store) Available() bool {
	return s.db != nil
}

// Name returns the database name, or "" when unavailable.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *Store) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db.Collection(name), nil
}

// Insert stores payload in the named collection under a freshly generated
// identifier and returns that identifier in string form. Any _id carried by
// payload is replaced.
func (s *Store) Insert(ctx context.Context, collectionName string, payload any) (string, error) {
	coll, err := s.collection(collectionName)
	if err != nil {
		return "", err
	}

	if err := s.ensureIndexes(ctx, collectionName); err != nil {
		s.log.Warn("inserting without unique index", zap.String("collection", collectionName), zap.Error(err))
	}

	doc, err := toDocument(payload)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", collectionName, err)
	}
	id := primitive.NewObjectID()
	doc = append(bson.D{{Key: "_id", Value: id}}, doc...)

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", s.translate(collectionName, "insert", err)
	}
	return IDString(res.InsertedID), nil
}

// List decodes every document in the named collection matching filter into
// out, which must be a pointer to a slice. A nil filter matches everything.
// Order is whatever the store returns.
func (s *Store) List(ctx context.Context, collectionName string, filter bson.M, out any) error {
	coll, err := s.collection(collectionName)
	if err != nil {
		return err
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return s.translate(collectionName, "find", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return s.translate(collectionName, "decode", err)
	}
	return nil
}

// FindOne decodes the first document matching filter into out.
func (s *Store) FindOne(ctx context.Context, collectionName string, filter bson.M, out any) error {
	coll, err := s.collection(collectionName)
	if err != nil {
		return err
	}
	if err := coll.FindOne(ctx, filter).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return s.translate(collectionName, "find one", err)
	}
	return nil
}

// CollectionNames lists the collections in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, s.translate("", "list collections", err)
	}
	return names, nil
}

func (s *Store) translate(collectionName, op string, err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", op, collectionName, ErrDuplicateKey)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		s.log.Warn("store unreachable", zap.String("collection", collectionName), zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s %s: %w: %v", op, collectionName, ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s %s: %w", op, collectionName, err)
	}
}

func toDocument(payload any) (bson.D, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := doc[:0]
	for _, e := range doc {
		if e.Key != "_id" {
			out = append(out, e)
		}
	}
	return out, nil
}
