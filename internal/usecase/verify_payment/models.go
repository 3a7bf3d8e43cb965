package verify_payment

import "github.com/m04kA/TurfBookingService/internal/domain"

// Request confirms a gateway payment for a booking.
type Request struct {
	BookingID         int64
	UserID            int64
	Role              domain.Role
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}

// Response reports the settled booking state.
type Response struct {
	BookingID int64
	Status    domain.BookingStatus
	PaymentID string
}
