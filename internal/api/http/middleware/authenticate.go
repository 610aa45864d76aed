package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/notekeeper/server/internal/api/http/response"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// IdentityResolver resolves the user id behind a presented bearer token.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (int64, error)
}

// Authenticate validates bearer tokens and injects the user id into the
// request context. Requests failing resolution are rejected with a single
// unauthenticated response, regardless of the underlying token failure.
type Authenticate struct {
	resolver       IdentityResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver IdentityResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, resolves the identity and calls
// the next handler with the user id on the context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenString string
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		userID, err := m.resolver.ResolveIdentity(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.Error(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}
