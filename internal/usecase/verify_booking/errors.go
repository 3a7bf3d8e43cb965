package verify_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("verify_booking: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("verify_booking: booking not found")

	// ErrWrongState is returned when the requested transition is not
	// allowed from the booking's current state.
	ErrWrongState = errors.New("verify_booking: transition not allowed")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("verify_booking: internal error")
)
