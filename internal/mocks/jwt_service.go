package mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taskfolio/taskfolio-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing without real
// signing. Tokens are transparent "mock-token:<userID>" strings.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// TokenForUser returns the transparent token the default implementation
// issues for the given user.
func TokenForUser(userID int64) string {
	return fmt.Sprintf("mock-token:%d", userID)
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return TokenForUser(userID), nil
}

// GenerateTokenWithTTL implements the JWTService interface.
func (m *MockJWTService) GenerateTokenWithTTL(
	ctx context.Context,
	userID int64,
	ttl time.Duration,
) (string, error) {
	return m.GenerateToken(ctx, userID)
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	raw, ok := strings.CutPrefix(tokenString, "mock-token:")
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return nil, auth.ErrInvalidToken
	}

	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    userID,
		Subject:   raw,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}
