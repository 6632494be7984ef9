package availability

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrSlotConflict = errors.New("slot conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("blocked window not found")
)
