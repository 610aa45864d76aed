package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// Auth implements the authentication gate: signup, login, identity
// resolution for protected operations, and logout.
type Auth struct {
	users  model.UserStore
	hasher model.PasswordHasher
	tokens model.TokenManager
	logger *logger.Logger
}

// NewAuth creates an Auth service.
func NewAuth(users model.UserStore, hasher model.PasswordHasher, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// SignUp registers a new user. A registered email fails with ErrEmailTaken;
// the returned user carries the generated id.
func (a *Auth) SignUp(ctx context.Context, name, email, plaintext string) (model.User, error) {
	a.logger.Debug("Auth service: starting signup", "email", email)

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"email", email,
		"user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password fail with the same ErrInvalidCredentials so responses do
// not reveal which one it was.
func (a *Auth) Login(ctx context.Context, email, plaintext string) (model.Session, error) {
	a.logger.Debug("Auth service: starting login", "email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(plaintext, user.PasswordHash) {
		return model.Session{}, model.ErrInvalidCredentials
	}

	accessToken, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed", "user_id", user.ID)

	return model.Session{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}

// ResolveIdentity validates a presented token and returns the subject's user
// id. Every token failure, and a subject referring to a deleted account,
// collapses into ErrUnauthenticated.
func (a *Auth) ResolveIdentity(ctx context.Context, tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, model.ErrUnauthenticated
	}

	userID, err := a.tokens.Validate(tokenString)
	if err != nil {
		a.logger.Debug("Auth service: token validation failed", "error", err.Error())
		return 0, model.ErrUnauthenticated
	}

	if _, err := a.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Debug("Auth service: token subject no longer exists", "user_id", userID)
			return 0, model.ErrUnauthenticated
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return 0, fmt.Errorf("failed to get user by id: %w", err)
	}

	return userID, nil
}

// Logout acknowledges the request. Tokens are stateless, so there is nothing
// to invalidate server-side; issued tokens remain valid until expiry.
func (a *Auth) Logout(ctx context.Context, userID int64) error {
	a.logger.Info("Auth service: user logged out", "user_id", userID)
	return nil
}
