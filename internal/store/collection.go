package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection is a typed view over one named collection.
type Collection[T any] struct {
	store *Store
	name  string
}

func NewCollection[T any](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) (string, error) {
	return c.store.Insert(ctx, c.name, doc)
}

// List never returns a nil slice on success.
func (c *Collection[T]) List(ctx context.Context, filter bson.M) ([]T, error) {
	out := []T{}
	if err := c.store.List(ctx, c.name, filter, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := c.store.FindOne(ctx, c.name, filter, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
