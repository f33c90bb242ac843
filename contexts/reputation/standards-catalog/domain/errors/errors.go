package errors

import "errors"

var (
	// ErrUnauthorized is returned when the caller is not the instance owner.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrInvalidRequest is returned when a required field is missing.
	ErrInvalidRequest = errors.New("invalid request")
)
