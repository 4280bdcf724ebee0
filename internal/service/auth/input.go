package auth

import (
	"unicode/utf8"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const (
	maxUsernameLen = 150
	minPasswordLen = 8
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordLen = 72
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs domain.FieldErrors

	switch n := utf8.RuneCountInString(i.Username); {
	case n == 0:
		errs.Add("username", "required")
	case n > maxUsernameLen:
		errs.Add("username", "too long")
	}

	switch n := len(i.Password); {
	case n == 0:
		errs.Add("password", "required")
	case n < minPasswordLen:
		errs.Add("password", "too short")
	case n > maxPasswordLen:
		errs.Add("password", "too long")
	}

	return errs.Err()
}

// LoginInput holds username + password credentials.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs domain.FieldErrors

	if i.Username == "" {
		errs.Add("username", "required")
	}
	if i.Password == "" {
		errs.Add("password", "required")
	}

	return errs.Err()
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs domain.FieldErrors

	if i.RefreshToken == "" {
		errs.Add("refresh_token", "required")
	} else if len(i.RefreshToken) > 512 {
		errs.Add("refresh_token", "too long")
	}

	return errs.Err()
}
