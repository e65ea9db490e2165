package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/platform/logger"
	"github.com/taskfolio/taskfolio-api/internal/service/auth"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// RegisterInput carries the fields required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair is the successful login result: a bearer access token and its
// scheme. There is no refresh-token concept; tokens simply expire.
type TokenPair struct {
	AccessToken string
	TokenType   string
}

// UserService provides registration, authentication, and lookup of users.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns ErrUsernameTaken or ErrEmailTaken on duplicates.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Authenticate verifies the credentials and issues a bearer token with
	// the configured default lifetime. An unknown username and a wrong
	// password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*TokenPair, error)

	// GetByUsername looks a user up by username.
	// Returns store.ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register.
// The username lookup is a fast-path duplicate check; the store's unique
// constraints remain the authoritative guard against a concurrent
// registration of the same name winning the race.
func (s *userServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if input.Password == "" {
		return nil, domain.ErrEmptyPassword
	}
	if len(input.Password) > 72 {
		return nil, domain.ErrPasswordTooLong
	}

	_, err := s.userStore.GetByUsername(ctx, input.Username)
	if err == nil {
		log.Debug("registration rejected: username taken",
			slog.String("username", input.Username))
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check username availability",
			slog.String("error", err.Error()),
			slog.String("username", input.Username))
		return nil, NewServiceError("register", "failed to check username", err)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error("failed to hash password",
			slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to hash password", err)
	}

	user, err := domain.NewUser(input.Username, input.Email, hashed)
	if err != nil {
		return nil, err
	}

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailExists):
			return nil, ErrEmailTaken
		default:
			log.Error("failed to create user",
				slog.String("error", err.Error()),
				slog.String("username", input.Username))
			return nil, NewServiceError("register", "failed to create user", err)
		}
	}

	log.Info("user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username))
	return created, nil
}

// Authenticate implements UserService.Authenticate.
func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown username",
				slog.String("username", username))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login rejected: password mismatch",
			slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, NewServiceError("authenticate", "failed to issue token", err)
	}

	log.Info("user authenticated", slog.Int64("user_id", user.ID))
	return &TokenPair{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetByUsername implements UserService.GetByUsername.
func (s *userServiceImpl) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
