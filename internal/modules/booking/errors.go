package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrSlotConflict = errors.New("slot conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("booking not found")
	ErrInvalidState = errors.New("operation not permitted in current state")
)
