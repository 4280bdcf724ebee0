package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// Get returns a single word. Anonymous callers are allowed.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("word.Get: %w", err)
	}
	return w, nil
}

// List returns one page of the dictionary ordered by lemma.
// A page past the end is ErrNotFound, except for the first page of an empty result.
func (s *Service) List(ctx context.Context, input ListInput) (*domain.Page[domain.Word], error) {
	size := input.PageSize
	switch {
	case size <= 0:
		size = s.pagination.DefaultPageSize
	case size > s.pagination.MaxPageSize:
		size = s.pagination.MaxPageSize
	}
	page := input.Page
	if page <= 0 {
		page = 1
	}

	words, total, err := s.words.List(ctx, domain.WordFilter{
		StartsWith: input.StartsWith,
		SourceLang: input.SourceLang,
		TargetLang: input.TargetLang,
		Limit:      size,
		Offset:     (page - 1) * size,
	})
	if err != nil {
		return nil, fmt.Errorf("word.List: %w", err)
	}
	if page > 1 && len(words) == 0 {
		return nil, fmt.Errorf("word.List page %d: %w", page, domain.ErrNotFound)
	}

	return &domain.Page[domain.Word]{Items: words, Total: total, Number: page, Size: size}, nil
}

// Create adds a dictionary entry authored by the caller.
func (s *Service) Create(ctx context.Context, input WordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w := input.toDomain(uuid.New())
	w.CreatedBy = &userID
	w.ModifiedBy = &userID

	created, err := s.words.Create(ctx, &w)
	if err != nil {
		return nil, fmt.Errorf("word.Create: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("lemma", created.Lemma))

	return created, nil
}

// Update replaces every writable field of a word and records the caller as modifier.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input WordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w := input.toDomain(id)
	w.ModifiedBy = &userID

	updated, err := s.words.Update(ctx, &w)
	if err != nil {
		return nil, fmt.Errorf("word.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a word. Returns ErrConflict while it is still referenced.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("word.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}
