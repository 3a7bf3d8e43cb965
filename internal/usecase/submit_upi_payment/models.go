package submit_upi_payment

import "github.com/m04kA/TurfBookingService/internal/domain"

// Request submits a manually paid UPI transaction over slots the user holds.
type Request struct {
	UserID     int64
	Role       domain.Role
	SlotIDs    []int64
	UTRNumber  string
	Screenshot *string
}

// Response describes the booking created for admin verification.
type Response struct {
	BookingID   int64
	SlotIDs     []int64
	TotalAmount int
	Status      domain.BookingStatus
}
