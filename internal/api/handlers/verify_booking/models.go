package verify_booking

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	verifyBooking "github.com/m04kA/TurfBookingService/internal/usecase/verify_booking"
)

// VerifyBookingRequest carries the admin verdict.
type VerifyBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *VerifyBookingRequest) ToUseCaseRequest(bookingID int64) *verifyBooking.Request {
	return &verifyBooking.Request{
		BookingID: bookingID,
		Target:    domain.BookingStatus(r.Status),
	}
}

// VerifyBookingResponse reports the settled booking state.
type VerifyBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *verifyBooking.Response) *VerifyBookingResponse {
	return &VerifyBookingResponse{
		BookingID: result.BookingID,
		Status:    string(result.Status),
	}
}
