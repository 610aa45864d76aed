package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching row exists, and by
	// note operations when the note exists but belongs to another owner.
	// The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned on signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthenticated covers missing, expired, malformed and tampered
	// tokens, as well as tokens referring to a deleted account.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidArgument is returned for malformed caller input, such as
	// out-of-range pagination parameters.
	ErrInvalidArgument = errors.New("invalid argument")
)
