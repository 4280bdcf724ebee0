// Package auth issues and verifies API credentials: short-lived HS256
// access tokens carrying the user's role, and opaque refresh tokens that
// are stored only as a SHA-256 hash.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// ErrInvalidToken wraps every access token rejection.
var ErrInvalidToken = errors.New("auth: invalid access token")

const refreshTokenBytes = 32

// Identity is what a valid access token says about its bearer.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// RefreshToken is a freshly generated refresh credential. Raw goes to the
// client, Hash to the database.
type RefreshToken struct {
	Raw  string
	Hash string
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role"`
}

// JWTManager signs and parses access tokens for a single issuer.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a JWTManager. The secret length is enforced by config validation.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// AccessToken signs a token for id that expires after the configured TTL.
func (m *JWTManager) AccessToken(id Identity) (string, error) {
	if !id.Role.IsValid() {
		return "", fmt.Errorf("auth: sign token: unknown role %q", id.Role)
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
		Role: id.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature, issuer and expiry and returns the
// identity the token carries. All failures wrap ErrInvalidToken.
func (m *JWTManager) ParseAccessToken(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	var claims accessClaims
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	if !claims.Role.IsValid() {
		return Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return Identity{UserID: userID, Role: claims.Role}, nil
}

// NewRefreshToken returns a random URL-safe token and its storage hash.
func (m *JWTManager) NewRefreshToken() (RefreshToken, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return RefreshToken{}, fmt.Errorf("auth: refresh token: %w", err)
	}

	raw := base64.RawURLEncoding.EncodeToString(b)
	return RefreshToken{Raw: raw, Hash: HashToken(raw)}, nil
}

// HashToken is the hex SHA-256 under which refresh tokens are stored and looked up.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
