package submit_upi_payment

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("submit_upi_payment: invalid input data")

	// ErrSlotNotFound is returned when a referenced slot does not exist.
	ErrSlotNotFound = errors.New("submit_upi_payment: slot not found")

	// ErrSlotNotHeld is returned when a slot is held by another user.
	ErrSlotNotHeld = errors.New("submit_upi_payment: slot not locked by user")

	// ErrWrongState is returned when a referenced slot is not LOCKED.
	ErrWrongState = errors.New("submit_upi_payment: slot not in LOCKED state")

	// ErrDuplicateUTR is returned when the UTR was already used by any booking.
	ErrDuplicateUTR = errors.New("submit_upi_payment: UTR already submitted")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("submit_upi_payment: internal error")
)
