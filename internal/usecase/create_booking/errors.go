package create_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotFound is returned when a referenced slot does not exist.
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotHeld is returned when a slot is not locked by the
	// requesting user.
	ErrSlotNotHeld = errors.New("create_booking: slot not held by user")

	// ErrLockExpired is returned when the hold lapsed before checkout.
	ErrLockExpired = errors.New("create_booking: slot lock expired")

	// ErrPaymentGateway is returned when the payment order cannot be created.
	ErrPaymentGateway = errors.New("create_booking: payment gateway error")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_booking: internal error")
)
