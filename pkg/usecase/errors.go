package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrUserRequired = errors.New("authenticated user is required")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUserNotFound = errors.New("user not found")
)
