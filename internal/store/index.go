package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const indexTimeout = 5 * time.Second

type uniqueIndex struct {
	collection string
	field      string
}

// RequireUniqueIndex registers a unique index on field. Until it has been
// created, every insert into the collection first tries to create it.
func (s *Store) RequireUniqueIndex(collection, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, uniqueIndex{collection: collection, field: field})
}

// EnsureIndexes creates every pending index. Indexes that fail stay pending.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	return s.ensureIndexes(ctx, "")
}

// ensureIndexes creates the pending indexes of collection, or of every
// collection when it is empty.
func (s *Store) ensureIndexes(ctx context.Context, collection string) error {
	s.mu.Lock()
	var todo []uniqueIndex
	for _, idx := range s.pending {
		if collection == "" || idx.collection == collection {
			todo = append(todo, idx)
		}
	}
	s.mu.Unlock()
	if len(todo) == 0 {
		return nil
	}
	if s.db == nil {
		return ErrStoreUnavailable
	}

	var errs []error
	for _, idx := range todo {
		if err := createUniqueIndex(ctx, s.db.Collection(idx.collection), idx.field); err != nil {
			errs = append(errs, fmt.Errorf("unique index %s.%s: %w", idx.collection, idx.field, err))
			continue
		}
		s.log.Info("unique index ready", zap.String("collection", idx.collection), zap.String("field", idx.field))
		s.markCreated(idx)
	}
	return errors.Join(errs...)
}

func (s *Store) markCreated(done uniqueIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, idx := range s.pending {
		if idx == done {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

func createUniqueIndex(ctx context.Context, collection *mongo.Collection, field string) error {
	indexmodel := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, indexmodel)
	return err
}
