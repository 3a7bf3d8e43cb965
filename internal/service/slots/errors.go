package slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("slots service: invalid input data")

	// ErrSlotNotFound is returned when the slot does not exist.
	ErrSlotNotFound = errors.New("slots service: slot not found")

	// ErrDuplicateSlot is returned when a slot already exists for the
	// (date, start time) pair.
	ErrDuplicateSlot = errors.New("slots service: slot already exists")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("slots service: internal error")
)
