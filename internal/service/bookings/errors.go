package bookings

import "errors"

var (
	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("bookings service: internal error")
)
