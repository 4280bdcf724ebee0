package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocabulary-backend/internal/auth"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// Logout revokes every refresh token of the caller. Access tokens already
// issued stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "refresh tokens revoked", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves a bearer access token into the caller's identity.
// Any rejection is reported as ErrUnauthorized; the cause is only logged.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Identity, error) {
	id, err := s.issuer.ParseAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("reason", err.Error()))
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
