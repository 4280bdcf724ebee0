// Package learning tracks which dictionary words a user has learned.
package learning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

type learningRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningData, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error)
	Create(ctx context.Context, d *domain.LearningData) (*domain.LearningData, error)
	SetLearned(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements learning data operations. Every operation is scoped
// to the caller's own records.
type Service struct {
	log  *slog.Logger
	repo learningRepo
}

func NewService(logger *slog.Logger, repo learningRepo) *Service {
	return &Service{
		log:  logger.With("service", "learning"),
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.LearningData, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	data, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("learning.List: %w", err)
	}
	return data, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.LearningData, error) {
	d, err := s.loadOwned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("learning.Get: %w", err)
	}
	return d, nil
}

// Create starts tracking a word for the caller. A second record for the
// same word is ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, wordID uuid.UUID, learned bool) (*domain.LearningData, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word", "required")
	}

	created, err := s.repo.Create(ctx, &domain.LearningData{
		ID:      uuid.New(),
		WordID:  wordID,
		UserID:  userID,
		Learned: learned,
	})
	if err != nil {
		return nil, fmt.Errorf("learning.Create: %w", err)
	}

	s.log.InfoContext(ctx, "learning data created",
		slog.String("word_id", wordID.String()),
		slog.Bool("learned", learned),
	)
	return created, nil
}

func (s *Service) SetLearned(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error) {
	if _, err := s.loadOwned(ctx, id); err != nil {
		return nil, fmt.Errorf("learning.SetLearned: %w", err)
	}

	d, err := s.repo.SetLearned(ctx, id, learned)
	if err != nil {
		return nil, fmt.Errorf("learning.SetLearned: %w", err)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, id); err != nil {
		return fmt.Errorf("learning.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("learning.Delete: %w", err)
	}
	return nil
}

// loadOwned hides records of other users behind ErrNotFound.
func (s *Service) loadOwned(ctx context.Context, id uuid.UUID) (*domain.LearningData, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, fmt.Errorf("learning data %s: %w", id, domain.ErrNotFound)
	}
	return d, nil
}
