package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupExpiredTokens deletes expired and revoked refresh tokens and
// returns how many rows went away. Used by the server ticker and the
// cleanup-tokens command.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "expired refresh tokens deleted", slog.Int("count", n))
	}
	return n, nil
}
