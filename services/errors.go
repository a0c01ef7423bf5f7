package services

import (
	"errors"
	"fmt"
)

// ErrUserNotFound is returned when an identity has no synced user row
var ErrUserNotFound = errors.New("user not found")

// ErrRecordNotFound is returned when a record is absent or owned by another user
var ErrRecordNotFound = errors.New("record not found")

// InsufficientCreditsError reports a rejected charge with the amounts involved
type InsufficientCreditsError struct {
	Required  int
	Available int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d", e.Required, e.Available)
}

// GenerationError wraps an upstream provider failure. Message is safe to show
// to the user; Err keeps the raw cause for server logs.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
