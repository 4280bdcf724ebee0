// Package wordprops manages the per-chapter word statistics of the caller's
// chapters.
package wordprops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

type propsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.WordProperties, error)
	Create(ctx context.Context, p *domain.WordProperties) (*domain.WordProperties, error)
	Update(ctx context.Context, id uuid.UUID, token string, frequency int) (*domain.WordProperties, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type chapterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
}

// Service implements word properties operations.
type Service struct {
	log      *slog.Logger
	props    propsRepo
	chapters chapterRepo
}

func NewService(logger *slog.Logger, props propsRepo, chapters chapterRepo) *Service {
	return &Service{
		log:      logger.With("service", "wordprops"),
		props:    props,
		chapters: chapters,
	}
}

// List returns the properties of every chapter the caller created.
func (s *Service) List(ctx context.Context) ([]domain.WordProperties, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	props, err := s.props.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wordprops.List: %w", err)
	}
	return props, nil
}

// Get returns a record of one of the caller's chapters.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error) {
	p, err := s.loadOwned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("wordprops.Get: %w", err)
	}
	return p, nil
}

// Create attaches a word to a chapter owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.WordProperties, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	chapter, err := s.chapters.GetByID(ctx, input.ChapterID)
	if err != nil {
		return nil, fmt.Errorf("wordprops.Create: %w", err)
	}
	if !chapter.IsOwnedBy(userID) {
		if !chapter.IsVisibleTo(userID) {
			return nil, fmt.Errorf("wordprops.Create: chapter %s: %w", input.ChapterID, domain.ErrNotFound)
		}
		return nil, domain.ErrForbidden
	}

	created, err := s.props.Create(ctx, &domain.WordProperties{
		ID:        uuid.New(),
		WordID:    input.WordID,
		ChapterID: input.ChapterID,
		Token:     input.Token,
		Frequency: input.Frequency,
	})
	if err != nil {
		return nil, fmt.Errorf("wordprops.Create: %w", err)
	}
	return created, nil
}

// Update replaces token and frequency. The word and chapter links are fixed.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.WordProperties, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.loadOwned(ctx, id); err != nil {
		return nil, fmt.Errorf("wordprops.Update: %w", err)
	}

	updated, err := s.props.Update(ctx, id, input.Token, input.Frequency)
	if err != nil {
		return nil, fmt.Errorf("wordprops.Update: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, id); err != nil {
		return fmt.Errorf("wordprops.Delete: %w", err)
	}
	if err := s.props.Delete(ctx, id); err != nil {
		return fmt.Errorf("wordprops.Delete: %w", err)
	}
	return nil
}

// loadOwned returns the record when its chapter belongs to the caller.
// Records of other users' chapters are reported as not found.
func (s *Service) loadOwned(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.props.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chapter, err := s.chapters.GetByID(ctx, p.ChapterID)
	if err != nil {
		return nil, err
	}
	if !chapter.IsOwnedBy(userID) {
		return nil, fmt.Errorf("word properties %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}
