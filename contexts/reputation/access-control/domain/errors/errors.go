package errors

import "errors"

var (
	// ErrUnauthorized is returned when the caller is not the instance owner.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrAlreadyAuthorized is returned when adding a principal that already holds the role.
	ErrAlreadyAuthorized = errors.New("principal is already authorized")
	// ErrNotAuthorized is returned when removing a principal that does not hold the role.
	ErrNotAuthorized = errors.New("principal is not authorized")
	// ErrInvalidRequest is returned when a required field is missing.
	ErrInvalidRequest = errors.New("invalid request")
)
