package direct_booking

import (
	directBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_direct_booking"
)

// DirectBookingRequest books a contiguous range of hours for a walk-in
// customer.
type DirectBookingRequest struct {
	Date       string `json:"date" validate:"required"`
	StartHour  int    `json:"startHour" validate:"min=0,max=23"`
	EndHour    int    `json:"endHour" validate:"min=1,max=24,gtfield=StartHour"`
	GuestName  string `json:"guestName" validate:"required"`
	GuestPhone string `json:"guestPhone" validate:"required"`
	Amount     *int   `json:"amount,omitempty" validate:"omitempty,min=0"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *DirectBookingRequest) ToUseCaseRequest(adminID int64) *directBooking.Request {
	return &directBooking.Request{
		AdminID:        adminID,
		Date:           r.Date,
		StartHour:      r.StartHour,
		EndHour:        r.EndHour,
		GuestName:      r.GuestName,
		GuestPhone:     r.GuestPhone,
		AmountOverride: r.Amount,
	}
}

// DirectBookingResponse describes the settled booking.
type DirectBookingResponse struct {
	BookingID   int64   `json:"bookingId"`
	SlotIDs     []int64 `json:"slotIds"`
	TotalAmount int     `json:"totalAmount"`
	Status      string  `json:"status"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *directBooking.Response) *DirectBookingResponse {
	return &DirectBookingResponse{
		BookingID:   result.BookingID,
		SlotIDs:     result.SlotIDs,
		TotalAmount: result.TotalAmount,
		Status:      string(result.Status),
	}
}
