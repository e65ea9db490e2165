package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the given user with the
	// configured default lifetime.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// GenerateTokenWithTTL creates a signed token for the given user with
	// an explicit lifetime, overriding the configured default.
	GenerateTokenWithTTL(ctx context.Context, userID int64, ttl time.Duration) (string, error)

	// ValidateToken checks the token's signature and expiry and extracts
	// the claims. Any failure, structural or otherwise, yields
	// ErrInvalidToken; the specific cause is never surfaced.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified claim set extracted from a valid token.
type Claims struct {
	// UserID is the numeric identifier of the user the token was issued for,
	// decoded from the token's subject claim.
	UserID int64

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
