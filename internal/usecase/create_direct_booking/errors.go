package create_direct_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_direct_booking: invalid input data")

	// ErrSlotUnavailable is returned when any requested hour is already
	// held or booked. Nothing is persisted in that case.
	ErrSlotUnavailable = errors.New("create_direct_booking: slot unavailable")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_direct_booking: internal error")
)
