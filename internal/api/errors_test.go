package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/service"
	"github.com/taskfolio/taskfolio-api/internal/service/auth"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "bad credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "no actor", err: service.ErrNoActor, want: http.StatusForbidden},
		{name: "not owned", err: service.ErrTaskNotOwned, want: http.StatusForbidden},
		{name: "task missing", err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{name: "user missing", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "username taken", err: service.ErrUsernameTaken, want: http.StatusConflict},
		{name: "email taken", err: service.ErrEmailTaken, want: http.StatusConflict},
		{name: "invalid status", err: domain.ErrInvalidStatus, want: http.StatusBadRequest},
		{name: "invalid priority", err: domain.ErrInvalidPriority, want: http.StatusBadRequest},
		{name: "empty title", err: domain.ErrEmptyTaskTitle, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("update: %w", store.ErrTaskNotFound),
			want: http.StatusNotFound,
		},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors get friendly messages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
		assert.Equal(t, "Username already registered", GetSafeErrorMessage(service.ErrUsernameTaken))
		assert.Equal(t, "Not authorized to access this task", GetSafeErrorMessage(service.ErrTaskNotOwned))
	})

	t.Run("unknown errors stay opaque", func(t *testing.T) {
		t.Parallel()

		msg := GetSafeErrorMessage(errors.New("pq: duplicate key value violates constraint"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("validation error includes field", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("id", "must be a positive integer", domain.ErrValidation)
		assert.Equal(t, "Invalid id: must be a positive integer", GetSafeErrorMessage(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("validator message is condensed", func(t *testing.T) {
		t.Parallel()

		raw := errors.New(
			"Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag",
		)
		assert.Equal(t, "Invalid Username: required field", SanitizeValidationError(raw))
	})

	t.Run("other errors get generic message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
