package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// learningRepo defines the learning data repository interface needed by user service.
type learningRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error)
}

// Service implements user listing, detail and role operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	learning learningRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, learning learningRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		learning: learning,
	}
}
