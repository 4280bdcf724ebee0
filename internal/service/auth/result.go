package auth

import (
	"time"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// Session is the token pair handed out by Login and Refresh. RefreshToken
// is the raw value; only its hash is stored.
type Session struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
	User             *domain.User
}
