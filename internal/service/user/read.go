package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// List returns all users ordered by username.
// Returns ErrUnauthorized for anonymous callers.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns a user with their learning data.
// Returns ErrUnauthorized for anonymous callers.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}

	learning, err := s.learning.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get learning: %w", err)
	}

	return &domain.UserDetail{User: *user, Learning: learning}, nil
}

// Me returns the authenticated user's own detail.
func (s *Service) Me(ctx context.Context) (*domain.UserDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.Get(ctx, userID)
}
