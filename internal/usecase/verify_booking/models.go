package verify_booking

import "github.com/m04kA/TurfBookingService/internal/domain"

// Request applies an admin verdict to a booking awaiting verification.
// Target must be CONFIRMED or CANCELLED.
type Request struct {
	BookingID int64
	Target    domain.BookingStatus
}

// Response reports the settled booking state.
type Response struct {
	BookingID int64
	Status    domain.BookingStatus
}
