// Package dataloader provides per-request DataLoaders that batch the word
// lookups made while rendering REST responses into single SQL calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type wordRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	Word wordRepo
}

// Loaders is created per request via NewLoaders; results are cached for
// the lifetime of that request only.
type Loaders struct {
	WordByID *dataloader.Loader[uuid.UUID, *domain.Word]
}

func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		WordByID: newLoader(newWordBatchFn(repos.Word)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// LoadWords resolves ids through the request's word loader in one batch.
// The result is aligned with ids.
func (l *Loaders) LoadWords(ctx context.Context, ids []uuid.UUID) ([]*domain.Word, error) {
	words, errs := l.WordByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return words, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores an already built Loaders set in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return withLazyLoaders(ctx, func() *Loaders { return l })
}

func withLazyLoaders(ctx context.Context, get func() *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, get)
}

// FromContext retrieves Loaders from the context, building them on first use.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	get, ok := ctx.Value(loadersKey).(func() *Loaders)
	if !ok || get == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return get()
}
