package model

import "errors"

var (
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenMissingSubject  = errors.New("token has no subject")
	ErrInvalidConfiguration = errors.New("invalid token configuration")
)
