package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/notekeeper/server/internal/api/http/response"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// AuthService defines signup, login and logout operations.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (model.Session, error)
	Logout(ctx context.Context, userID int64) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// userView is the public shape of a user: the password hash never leaves
// the service boundary.
type userView struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func toUserView(u model.User) userView {
	return userView{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// SignUp registers a new user.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	user, err := h.service.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusCreated, "User Signed Up Successfully.", toUserView(user))
}

// Login verifies credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed", "email", req.Email)
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusOK, "User Logged In Successfully.", sessionView{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
	})
}

// Logout acknowledges logout for the authenticated user.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, detailUnauthenticated)
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		handleError(w, err, detailUserNotFound)
		return
	}

	response.OK(w, http.StatusOK, "Logged out successfully.", nil)
}
