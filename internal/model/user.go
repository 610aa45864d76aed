package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, name, email, passwordHash string) (User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (User, error)
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher hashes plaintext passwords and verifies candidates
// against stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// User represents a stored user account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// UserUpdate describes a partial user update. Nil fields are left unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// ProfileUpdate is the caller-facing shape of a profile update: the password
// arrives in plaintext and is hashed before it reaches the store.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}
