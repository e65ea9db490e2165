package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskfolio/taskfolio-api/internal/api/shared"
	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/mocks"
)

// seedUser inserts a user into the mock store and returns it with its
// assigned ID.
func seedUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()

	user, err := userStore.Create(context.Background(), &domain.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "hashed:pw",
	})
	require.NoError(t, err)
	return user
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	// Handler that records whether it ran and which user it saw.
	nextHandler := func(gotUser **domain.User) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := shared.UserFromContext(r.Context()); ok {
				*gotUser = user
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token resolves user", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		middleware := NewAuthMiddleware(&mocks.MockJWTService{}, userStore)

		var gotUser *domain.User
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+mocks.TokenForUser(user.ID))
		recorder := httptest.NewRecorder()

		middleware.Authenticate(nextHandler(&gotUser)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, gotUser)
		assert.Equal(t, user.ID, gotUser.ID)
		assert.Equal(t, "alice", gotUser.Username)
	})

	t.Run("failure modes are uniform", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		middleware := NewAuthMiddleware(&mocks.MockJWTService{}, userStore)

		tests := []struct {
			name       string
			authHeader string
		}{
			{name: "missing header", authHeader: ""},
			{name: "wrong scheme", authHeader: "Basic dXNlcjpwdw=="},
			{name: "empty token", authHeader: "Bearer "},
			{name: "garbage token", authHeader: "Bearer not-a-real-token"},
			{name: "token for deleted user", authHeader: "Bearer " + mocks.TokenForUser(user.ID+1000)},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				var gotUser *domain.User
				req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
				if tt.authHeader != "" {
					req.Header.Set("Authorization", tt.authHeader)
				}
				recorder := httptest.NewRecorder()

				middleware.Authenticate(nextHandler(&gotUser)).ServeHTTP(recorder, req)

				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"),
					"401 must advertise the bearer challenge")
				assert.Nil(t, gotUser, "next handler must not run")
			})
		}
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetByIDFn = func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, errors.New("connection refused")
		}
		middleware := NewAuthMiddleware(&mocks.MockJWTService{}, userStore)

		var gotUser *domain.User
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+mocks.TokenForUser(1))
		recorder := httptest.NewRecorder()

		middleware.Authenticate(nextHandler(&gotUser)).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Nil(t, gotUser)
	})
}
