// Package service provides business logic for the application.
package service

import "errors"

// Service errors.
var (
	ErrMissingUsername = errors.New("username is required")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidDate     = errors.New("invalid date")
)
