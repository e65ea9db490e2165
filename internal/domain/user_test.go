package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "alice@example.com", "$2a$10$fakehash")
		require.NoError(t, err)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		wantErr  error
	}{
		{"empty username", "", "a@x.com", "hash", ErrEmptyUsername},
		{"empty email", "alice", "", "hash", ErrEmptyEmail},
		{"email without at", "alice", "alice.example.com", "hash", ErrInvalidEmail},
		{"email without domain dot", "alice", "alice@localhost", "hash", ErrInvalidEmail},
		{"email ending in dot", "alice", "alice@example.", "hash", ErrInvalidEmail},
		{"empty hash", "alice", "a@x.com", "", ErrEmptyHashedPass},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tc.username, tc.email, tc.hash)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
