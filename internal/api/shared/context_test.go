package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfolio/taskfolio-api/internal/api/shared"
	"github.com/taskfolio/taskfolio-api/internal/domain"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := shared.SetTraceID(context.Background())
		traceID := shared.GetTraceID(ctx)
		assert.NotEmpty(t, traceID)
	})

	t.Run("unique per context", func(t *testing.T) {
		t.Parallel()

		a := shared.GetTraceID(shared.SetTraceID(context.Background()))
		b := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})

	t.Run("absent trace ID", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, shared.GetTraceID(context.Background()))
	})
}

func TestUserContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: 3, Username: "carol"}
		ctx := shared.WithUser(context.Background(), user)

		got, ok := shared.UserFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, user, got)
	})

	t.Run("absent user", func(t *testing.T) {
		t.Parallel()

		got, ok := shared.UserFromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("nil user stored", func(t *testing.T) {
		t.Parallel()

		ctx := shared.WithUser(context.Background(), nil)
		_, ok := shared.UserFromContext(ctx)
		assert.False(t, ok)
	})
}
