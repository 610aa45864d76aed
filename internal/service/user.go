package service

import (
	"context"
	"fmt"

	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// Users implements profile operations for the authenticated user.
type Users struct {
	store  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

// NewUsers creates a Users service.
func NewUsers(store model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Users {
	return &Users{store: store, hasher: hasher, logger: logger}
}

// Get returns the user's profile.
func (s *Users) Get(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Update applies a partial profile update. A new password is hashed before
// it reaches the store.
func (s *Users) Update(ctx context.Context, userID int64, params model.ProfileUpdate) (model.User, error) {
	update := model.UserUpdate{
		Name:  params.Name,
		Email: params.Email,
	}

	if params.Password != nil {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			s.logger.Error("User service: failed to hash password",
				"user_id", userID,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.store.Update(ctx, userID, update)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", userID)

	return user, nil
}

// Delete removes the user's account. Owned notes are removed by the
// persistence layer's cascade.
func (s *Users) Delete(ctx context.Context, userID int64) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", userID)

	return nil
}
