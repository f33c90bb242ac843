package errors

import "errors"

var (
	ErrUnauthorized      = errors.New("caller is not the token owner")
	ErrNameInUse         = errors.New("token name is already in use")
	ErrNoChange          = errors.New("requested change matches the current value")
	ErrAlreadyAuthorized = errors.New("oracle is already authorized")
	ErrNotAuthorized     = errors.New("oracle is not authorized")
	ErrInvalidRequest    = errors.New("invalid request")
)
