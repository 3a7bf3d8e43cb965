package create_booking

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
)

// Request turns slots held by the user into a pending gateway booking.
type Request struct {
	UserID  int64
	SlotIDs []int64
}

// Response describes the created booking and its payment-order handle.
type Response struct {
	BookingID       int64
	SlotIDs         []int64
	TotalAmount     int
	Status          domain.BookingStatus
	RazorpayOrderID *string
}
