package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewTestJWTService creates an hmacJWTService with an injectable time
// function so tests can exercise expiry deterministically.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
