package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskfolio/taskfolio-api/internal/api/shared"
	"github.com/taskfolio/taskfolio-api/internal/domain"
	"github.com/taskfolio/taskfolio-api/internal/service/auth"
	"github.com/taskfolio/taskfolio-api/internal/store"
)

// Message returned for every authentication failure. Missing, malformed,
// expired and forged tokens all read the same to the client.
const unauthorizedMessage = "Could not validate credentials"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header, resolves
// the authenticated user and adds it to the request context. Every failure
// mode produces the same 401 with a bearer challenge so the response never
// reveals whether a token or account exists.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithBearerChallenge(w, r, unauthorizedMessage)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			shared.RespondWithBearerChallenge(w, r, unauthorizedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			shared.RespondWithBearerChallenge(w, r, unauthorizedMessage)
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				// Account deleted between token issuance and use. Treated
				// exactly like a bad token.
				shared.RespondWithBearerChallenge(w, r, unauthorizedMessage)
				return
			}
			slog.ErrorContext(r.Context(), "failed to load authenticated user",
				"error", err,
				"user_id", claims.UserID)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
