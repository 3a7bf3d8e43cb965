package verify_payment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("verify_payment: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("verify_payment: booking not found")

	// ErrNotOwner is returned when the booking belongs to another user.
	ErrNotOwner = errors.New("verify_payment: booking belongs to another user")

	// ErrWrongState is returned when the booking is not awaiting gateway
	// confirmation.
	ErrWrongState = errors.New("verify_payment: booking not awaiting payment")

	// ErrInvalidSignature is returned when the gateway signature does not
	// match. The booking is marked FAILED and its slots are released.
	ErrInvalidSignature = errors.New("verify_payment: invalid payment signature")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("verify_payment: internal error")
)
