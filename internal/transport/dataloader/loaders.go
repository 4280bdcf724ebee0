package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

func newWordBatchFn(repo wordRepo) dataloader.BatchFunc[uuid.UUID, *domain.Word] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Word] {
		words, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Word](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Word, len(words))
		for i := range words {
			byID[words[i].ID] = &words[i]
		}

		results := make([]*dataloader.Result[*domain.Word], len(keys))
		for i, key := range keys {
			if w, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Word]{Data: w}
			} else {
				results[i] = &dataloader.Result[*domain.Word]{
					Error: fmt.Errorf("word %s: %w", key, domain.ErrNotFound),
				}
			}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
