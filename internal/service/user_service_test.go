package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/mocks"
	"github.com/taskfolio/taskfolio-api/internal/service"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// newUserService builds a service over fresh mocks and returns both for
// per-test seeding and inspection.
func newUserService(t *testing.T) (service.UserService, *mocks.MockUserStore) {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	svc, err := service.NewUserService(userStore, &mocks.MockJWTService{}, hasher, hasher, nil)
	require.NoError(t, err)

	return svc, userStore
}

func TestNewUserService(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	jwtService := &mocks.MockJWTService{}

	t.Run("valid dependencies", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewUserService(userStore, jwtService, hasher, hasher, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("nil user store", func(t *testing.T) {
		t.Parallel()

		_, err := service.NewUserService(nil, jwtService, hasher, hasher, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("nil jwt service", func(t *testing.T) {
		t.Parallel()

		_, err := service.NewUserService(userStore, nil, hasher, hasher, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		user, err := svc.Register(ctx, service.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret-password",
		})
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEqual(t, "s3cret-password", user.HashedPassword,
			"plaintext password must never be persisted")
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "bob", Email: "bob@example.com", Password: "pw-one-long-enough",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, service.RegisterInput{
			Username: "bob", Email: "other@example.com", Password: "pw-two-long-enough",
		})
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "carol", Email: "carol@example.com", Password: "pw-one-long-enough",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, service.RegisterInput{
			Username: "caroline", Email: "carol@example.com", Password: "pw-two-long-enough",
		})
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "dave", Email: "dave@example.com", Password: "",
		})
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("password too long", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		_, err := svc.Register(ctx, service.RegisterInput{
			Username: "erin",
			Email:    "erin@example.com",
			Password: strings.Repeat("x", 73),
		})
		assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	register := func(t *testing.T, svc service.UserService) *domain.User {
		t.Helper()
		user, err := svc.Register(ctx, service.RegisterInput{
			Username: "frank", Email: "frank@example.com", Password: "correct-password",
		})
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)
		user := register(t, svc)

		tokens, err := svc.Authenticate(ctx, "frank", "correct-password")
		require.NoError(t, err)

		assert.Equal(t, "bearer", tokens.TokenType)
		assert.Equal(t, mocks.TokenForUser(user.ID), tokens.AccessToken)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)
		register(t, svc)

		_, err := svc.Authenticate(ctx, "nobody", "correct-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)
		register(t, svc)

		_, err := svc.Authenticate(ctx, "frank", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials,
			"wrong password and unknown username must be indistinguishable")
	})
}

func TestGetByUsername(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		created, err := svc.Register(ctx, service.RegisterInput{
			Username: "grace", Email: "grace@example.com", Password: "a-password",
		})
		require.NoError(t, err)

		found, err := svc.GetByUsername(ctx, "grace")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		svc, _ := newUserService(t)

		_, err := svc.GetByUsername(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
