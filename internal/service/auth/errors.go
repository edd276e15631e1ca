package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("login and password are required")
	ErrInvalidCredentials    = errors.New("invalid login or password")
	ErrUserNotFound          = errors.New("user not found")
)
