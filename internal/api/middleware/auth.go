package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/ani/point-check-backend/internal/domain"
	"github.com/ani/point-check-backend/internal/repository"
	"github.com/ani/point-check-backend/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// Authenticate inspects the Authorization header on every request. Requests
// without a bearer token pass through unauthenticated; requests with an
// invalid token are rejected; requests with a valid token get the matching
// user attached to the request context.
func Authenticate(tokens *service.TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokens.ExtractBearer(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !tokens.Validate(token) {
				log.Printf("ERROR [middleware.Authenticate] token validation failed")
				respondUnauthorized(w, "Invalid token")
				return
			}

			username, err := tokens.Username(token)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] failed to decode subject: %v", err)
				respondUnauthorized(w, "Invalid token")
				return
			}

			user, err := users.GetByUsername(r.Context(), username)
			if err != nil {
				log.Printf("ERROR [middleware.Authenticate] failed to load user %q: %v", username, err)
				respondUnauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireUser rejects requests that reached the handler without an
// authenticated principal.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			respondUnauthorized(w, "Authorization required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser attaches the authenticated principal to the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the authenticated principal, if any.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + message + `"}`))
}
