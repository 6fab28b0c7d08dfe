// Package service defines domain-level service interfaces implemented by the infra layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims carried by portal tokens.
type Claims struct {
	ProfileID uuid.UUID `json:"-"`
	Role      string    `json:"role"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for JWT operations.
// Tokens carry the profile ID as subject and a single role claim; the role in a
// token is a hint only, authorization always re-reads the role from storage.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a profile.
	GenerateTokens(profileID uuid.UUID, role string) (accessToken, refreshToken string, err error)

	// ValidateAccessToken parses and validates an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses and validates a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken produces the storage hash for a refresh token. Raw tokens are
	// never persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
