// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound reports a category, group, or list id that does not
	// exist in the current session.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPosition reports a transaction position outside the
	// bounds of the currently loaded store.
	ErrInvalidPosition = errors.New("invalid transaction position")

	// ErrAlreadyMember reports a duplicate list add. It is a no-op
	// outcome, not a failure: no state changed.
	ErrAlreadyMember = errors.New("transaction already in list")

	// ErrNotMember reports a list remove for a non-member. Like
	// ErrAlreadyMember it leaves state untouched.
	ErrNotMember = errors.New("transaction not in list")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
