// Package word implements dictionary operations: CRUD, paginated listing
// and bulk CSV import.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/config"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// wordRepo defines the dictionary repository interface needed by word service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkInsert(ctx context.Context, words []domain.Word) (int, error)
}

// Service implements dictionary operations.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	pagination config.PaginationConfig
	imports    config.ImportConfig
}

// NewService creates a new word service instance.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	pagination config.PaginationConfig,
	imports config.ImportConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "word"),
		words:      words,
		pagination: pagination,
		imports:    imports,
	}
}
