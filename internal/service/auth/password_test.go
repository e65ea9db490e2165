package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast; production uses the default cost.
	hasher := NewBcryptHasher(4)

	t.Run("hash then compare succeeds", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "correct horse battery staple", hash)

		assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	})

	t.Run("compare fails for wrong password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hash, "wrong password"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("same password")
		require.NoError(t, err)
		second, err := hasher.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
