package core

import "errors"

// Common errors.
var (
	ErrReadOnly       = errors.New("store is in read-only mode")
	ErrNoNotes        = errors.New("user has no notes")
	ErrInvalidIndex   = errors.New("invalid note number")
	ErrNoPendingClear = errors.New("no pending clear confirmation")
	ErrEmptyUserID    = errors.New("user ID cannot be empty")
	ErrEmptyNote      = errors.New("note text cannot be empty")
)
