package service

import "errors"

// Validation and lookup failures surfaced to the web layer, which maps them
// onto HTTP statuses. Authorization failures come from the authz package and
// pass through services untouched.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyRegistered   = errors.New("already registered for this event")
	ErrNotRegistered       = errors.New("not registered for this event")
	ErrDuplicateAssignment = errors.New("user already holds a role in this organization")
	ErrInvalidRating       = errors.New("rating out of range")
	ErrMissingAnswer       = errors.New("missing required answer")
)
