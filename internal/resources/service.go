// Package resources implements the create and list operations shared by
// every entity collection.
package resources

import (
	"context"

	"ImpactFlow/internal/models"
	"ImpactFlow/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
)

type Repository[T any] interface {
	Insert(ctx context.Context, doc *T) (string, error)
	List(ctx context.Context, filter bson.M) ([]T, error)
}

// Hooks customize a Service for one entity. All are optional.
type Hooks[T any] struct {
	// Prepare runs after validation, right before the insert.
	Prepare func(ctx context.Context, rec *T) error
	// Sanitize runs on every listed record.
	Sanitize func(rec *T)
	// MapError translates insert errors.
	MapError func(err error) error
}

type Service[T any] struct {
	repo      Repository[T]
	validator *validation.Validator
	hooks     Hooks[T]
}

func NewService[T any](repo Repository[T], v *validation.Validator, hooks Hooks[T]) *Service[T] {
	return &Service[T]{repo: repo, validator: v, hooks: hooks}
}

// Create fills defaults, validates and inserts rec, returning the new
// identifier. Invalid records never reach the repository.
func (s *Service[T]) Create(ctx context.Context, rec *T) (string, error) {
	if d, ok := any(rec).(models.Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := s.validator.Validate(rec); err != nil {
		return "", err
	}
	if s.hooks.Prepare != nil {
		if err := s.hooks.Prepare(ctx, rec); err != nil {
			return "", err
		}
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		if s.hooks.MapError != nil {
			return "", s.hooks.MapError(err)
		}
		return "", err
	}
	return id, nil
}

// List returns the records matching filter; a nil filter lists everything.
func (s *Service[T]) List(ctx context.Context, filter bson.M) ([]T, error) {
	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []T{}
	}
	if s.hooks.Sanitize != nil {
		for i := range recs {
			s.hooks.Sanitize(&recs[i])
		}
	}
	return recs, nil
}
