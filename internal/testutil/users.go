package testutil

import (
	"context"
	"sync"

	"ImpactFlow/internal/models"
	"ImpactFlow/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUsers is an in-memory user store enforcing unique emails the way the
// Mongo index does.
type MemoryUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[primitive.ObjectID]models.User)}
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, nil
	}
	u, ok := m.users[oid]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MemoryUsers) CreateUser(_ context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return "", store.ErrDuplicateKey
		}
	}
	u := *user
	u.ID = primitive.NewObjectID()
	m.users[u.ID] = u
	return u.ID.Hex(), nil
}

// Delete removes a user, simulating an account removed out of band.
func (m *MemoryUsers) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if oid, err := store.ParseID(id); err == nil {
		delete(m.users, oid)
	}
}

// Get returns the stored record, digest included.
func (m *MemoryUsers) Get(id string) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := store.ParseID(id)
	if err != nil {
		return models.User{}, false
	}
	u, ok := m.users[oid]
	return u, ok
}

// Deactivate flips is_active off for the user.
func (m *MemoryUsers) Deactivate(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := store.ParseID(id)
	if err != nil {
		return
	}
	if u, ok := m.users[oid]; ok {
		inactive := false
		u.IsActive = &inactive
		m.users[oid] = u
	}
}
