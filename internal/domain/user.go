package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns chapters and learning data.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserDetail is a user together with their learning progress.
type UserDetail struct {
	User
	Learning []LearningData
}

// RefreshToken is a stored refresh token. Only the SHA-256 of the raw
// value is kept.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the token can still be exchanged at now: not
// revoked and not past ExpiresAt. A token expiring exactly at now is active.
func (t *RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && !t.ExpiresAt.Before(now)
}
