// ABOUTME: HTTP middleware for JWT authentication on API endpoints
// ABOUTME: Extracts the bearer token and attaches the user to the request context

package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/2389/taskdeck/internal/store"
)

// TokenResolver resolves a raw bearer token to the user it was issued for.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*store.User, error)
}

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// Middleware creates an HTTP middleware that attempts bearer-token auth and
// always lets the request through. On success the user is attached to the
// request context; on any failure the request continues anonymous and the
// endpoint's own auth requirement decides whether to reject it. A context
// that already carries an identity is never overwritten, so stacking the
// middleware twice is harmless.
func Middleware(resolver TokenResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				next.ServeHTTP(w, r) // Continue as anonymous
				return
			}

			user, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				logger.Debug("token resolution failed", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			authCtx := &AuthContext{
				UserID:   user.ID,
				Username: user.Username,
			}
			next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), authCtx)))
		})
	}
}
