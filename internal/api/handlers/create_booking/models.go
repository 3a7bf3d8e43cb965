package create_booking

import (
	createBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest creates a gateway booking over locked slots.
type CreateBookingRequest struct {
	SlotIDs []int64 `json:"slotIds" validate:"required,min=1"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:  userID,
		SlotIDs: r.SlotIDs,
	}
}

// CreateBookingResponse describes the created booking.
type CreateBookingResponse struct {
	BookingID       int64   `json:"bookingId"`
	SlotIDs         []int64 `json:"slotIds"`
	TotalAmount     int     `json:"totalAmount"`
	Status          string  `json:"status"`
	RazorpayOrderID *string `json:"razorpayOrderId,omitempty"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:       result.BookingID,
		SlotIDs:         result.SlotIDs,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		RazorpayOrderID: result.RazorpayOrderID,
	}
}
