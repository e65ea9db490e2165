package store

import (
	"context"

	"github.com/taskfolio/taskfolio-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
type UserStore interface {
	// Create saves a new user to the store and returns the stored record
	// with its assigned ID and creation timestamp.
	// Returns ErrUsernameExists or ErrEmailExists if a unique constraint
	// is violated.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
