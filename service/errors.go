package service

import "errors"

// Validation errors returned by the lifecycle manager before any write.
// A validation failure means no field is written and no audit record is
// appended.
var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInvalidAmount     = errors.New("paid amount must be non-negative")
	ErrConflict          = errors.New("booking is still active")
)
