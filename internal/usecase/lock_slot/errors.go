package lock_slot

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("lock_slot: invalid input data")

	// ErrSlotNotFound is returned when the referenced slot does not exist.
	ErrSlotNotFound = errors.New("lock_slot: slot not found")

	// ErrSlotUnavailable is returned when another user holds the slot.
	ErrSlotUnavailable = errors.New("lock_slot: slot unavailable")

	// ErrPastSlot is returned when the slot start has already passed.
	ErrPastSlot = errors.New("lock_slot: slot is in the past")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("lock_slot: internal error")
)
