package service

import (
	"errors"
	"fmt"
)

// Common service-level errors.
var (
	// ErrNoActor is returned when an operation that requires an
	// authenticated user is invoked without one.
	ErrNoActor = errors.New("no authenticated user")

	// ErrTaskNotOwned is returned when an authenticated user acts on a
	// task owned by someone else. This deliberately confirms the task
	// exists to the caller; see the hardening note in DESIGN.md.
	ErrTaskNotOwned = errors.New("task not owned by user")

	// ErrInvalidCredentials is the uniform login failure for both an
	// unknown username and a wrong password, so responses carry no
	// username-existence oracle.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken is returned when registering an email that already
	// exists.
	ErrEmailTaken = errors.New("email already registered")
)

// ServiceError carries the failing operation alongside the wrapped cause.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
