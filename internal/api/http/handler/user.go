package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/notekeeper/server/internal/api/http/response"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// UserService defines profile operations for the authenticated user.
type UserService interface {
	Get(ctx context.Context, userID int64) (model.User, error)
	Update(ctx context.Context, userID int64, params model.ProfileUpdate) (model.User, error)
	Delete(ctx context.Context, userID int64) error
}

// User handles HTTP endpoints for the authenticated user's profile.
type User struct {
	service        UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Get returns the caller's profile.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusOK, "User fetched successfully.", toUserView(user))
}

// Update applies a partial update to the caller's profile.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	user, err := h.service.Update(r.Context(), userID, model.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("User handler: failed to update user",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusOK, "User updated successfully.", toUserView(user))
}

// Delete removes the caller's account and, by cascade, their notes.
func (h *User) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusOK, "User deleted successfully.", nil)
}
