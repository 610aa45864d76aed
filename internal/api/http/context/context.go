// Package context carries the authenticated user id on request contexts.
package context

import (
	"context"

	"github.com/notekeeper/server/internal/model"
)

type contextKey int

const userIDKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager implements model.ContextManager over a private context key, so
// only this package can write the authenticated identity.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user id.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user id set by the authentication
// middleware, reporting whether one was present.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
