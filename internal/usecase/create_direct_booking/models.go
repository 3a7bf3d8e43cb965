package create_direct_booking

import "github.com/m04kA/TurfBookingService/internal/domain"

// Request books every hourly slot with a start hour in [StartHour, EndHour)
// on one date for a walk-in customer, bypassing the lock and payment flow.
// Admin only.
type Request struct {
	AdminID    int64
	Date       string
	StartHour  int
	EndHour    int
	GuestName  string
	GuestPhone string
	// AmountOverride replaces the computed total when the admin agreed a
	// custom price at the counter.
	AmountOverride *int
}

// Response describes the settled booking.
type Response struct {
	BookingID   int64
	SlotIDs     []int64
	TotalAmount int
	Status      domain.BookingStatus
}
