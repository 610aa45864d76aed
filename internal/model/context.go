package model

import "context"

// ContextManager stores and retrieves the authenticated user id on a request
// context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID int64) context.Context
	GetUserIDFromContext(ctx context.Context) (int64, bool)
}
