package errors

import "errors"

var (
	ErrUnauthorized   = errors.New("caller may not issue or burn this token")
	ErrTokenInactive  = errors.New("token is not active")
	ErrInvalidAmount  = errors.New("amount must not be negative")
	ErrInvalidQuery   = errors.New("account must not be the null principal")
	ErrInvalidRequest = errors.New("invalid request")
)
