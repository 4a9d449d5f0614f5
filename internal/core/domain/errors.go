package domain

import (
	"errors"
	"fmt"
)

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired indicates the session token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the session token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSessionNotFound indicates the session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrTermRequired indicates a search was attempted with a blank term
	ErrTermRequired = errors.New("search term is required")
)

// ProviderError carries the status an upstream image-provider call failed
// with, so the route boundary can propagate it instead of a blanket 500.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("image provider returned status %d", e.StatusCode)
}
