package razorpay

import "errors"

var (
	// ErrOrderCreation is returned when the gateway rejects an order request.
	ErrOrderCreation = errors.New("razorpay client: failed to create order")

	// ErrInvalidSignature is returned when a payment callback signature does
	// not match the expected HMAC.
	ErrInvalidSignature = errors.New("razorpay client: invalid payment signature")

	// ErrInternal is returned on transport-level client failures.
	ErrInternal = errors.New("razorpay client: internal error")

	// ErrInvalidResponse is returned when the gateway response cannot be parsed.
	ErrInvalidResponse = errors.New("razorpay client: invalid response")
)
