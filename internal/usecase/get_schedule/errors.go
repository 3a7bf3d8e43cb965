package get_schedule

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_schedule: internal error")
)
