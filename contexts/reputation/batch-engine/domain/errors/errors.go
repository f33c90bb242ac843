package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the caller holds no privileged tier.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrInvalidRequest is returned when a batch entry is malformed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidAmount is returned when a user-batch count is not positive.
	ErrInvalidAmount = errors.New("count must be positive")
	// ErrDestroyedStandard is the sentinel matched by errors.Is for any
	// destroyed-standard failure.
	ErrDestroyedStandard = errors.New("standard is destroyed")
)

// DestroyedStandardError reports which account and standard aborted a batch.
type DestroyedStandardError struct {
	Account  string
	Standard string
}

func (e *DestroyedStandardError) Error() string {
	return fmt.Sprintf("standard %q is destroyed (account %q)", e.Standard, e.Account)
}

func (e *DestroyedStandardError) Is(target error) bool {
	return target == ErrDestroyedStandard
}
