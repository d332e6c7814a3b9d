package testutil

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-memory stand-in for store.Collection. Documents
// round-trip through BSON so field names and filters behave like the real
// collection.
type MemoryCollection[T any] struct {
	mu   sync.Mutex
	docs []bson.M

	// Err, when set, is returned by every operation.
	Err error
	// Inserts counts successful inserts.
	Inserts int
}

func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{}
}

func (m *MemoryCollection[T]) Insert(_ context.Context, doc *T) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	stored["_id"] = id
	m.docs = append(m.docs, stored)
	m.Inserts++
	return id.Hex(), nil
}

func (m *MemoryCollection[T]) List(_ context.Context, filter bson.M) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := []T{}
	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var rec T
		if err := bson.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Docs returns the raw stored documents.
func (m *MemoryCollection[T]) Docs() []bson.M {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bson.M(nil), m.docs...)
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}
