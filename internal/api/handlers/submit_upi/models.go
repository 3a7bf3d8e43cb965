package submit_upi

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	submitUPI "github.com/m04kA/TurfBookingService/internal/usecase/submit_upi_payment"
)

// SubmitUPIRequest carries the paid-for slots and the UPI transaction reference.
type SubmitUPIRequest struct {
	SlotIDs    []int64 `json:"slotIds" validate:"required,min=1"`
	UTRNumber  string  `json:"utrNumber" validate:"required,len=12,numeric"`
	Screenshot *string `json:"screenshot,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *SubmitUPIRequest) ToUseCaseRequest(userID int64, role domain.Role) *submitUPI.Request {
	return &submitUPI.Request{
		UserID:     userID,
		Role:       role,
		SlotIDs:    r.SlotIDs,
		UTRNumber:  r.UTRNumber,
		Screenshot: r.Screenshot,
	}
}

// SubmitUPIResponse reports the booking created for admin verification.
type SubmitUPIResponse struct {
	BookingID   int64   `json:"bookingId"`
	SlotIDs     []int64 `json:"slotIds"`
	TotalAmount int     `json:"totalAmount"`
	Status      string  `json:"status"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *submitUPI.Response) *SubmitUPIResponse {
	return &SubmitUPIResponse{
		BookingID:   result.BookingID,
		SlotIDs:     result.SlotIDs,
		TotalAmount: result.TotalAmount,
		Status:      string(result.Status),
	}
}
