package lock_range

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("lock_range: invalid input data")

	// ErrRangeUnavailable is returned when any slot of the range is held
	// by another user. Successfully acquired locks are rolled back.
	ErrRangeUnavailable = errors.New("lock_range: one or more slots unavailable")

	// ErrPastSlot is returned when the range starts in the past.
	ErrPastSlot = errors.New("lock_range: range starts in the past")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("lock_range: internal error")
)
