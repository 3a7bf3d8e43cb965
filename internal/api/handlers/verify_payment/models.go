package verify_payment

import (
	"github.com/m04kA/TurfBookingService/internal/domain"
	verifyPayment "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
)

// VerifyPaymentRequest carries the gateway callback parameters.
type VerifyPaymentRequest struct {
	BookingID         int64  `json:"bookingId" validate:"required"`
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *VerifyPaymentRequest) ToUseCaseRequest(userID int64, role domain.Role) *verifyPayment.Request {
	return &verifyPayment.Request{
		BookingID:         r.BookingID,
		UserID:            userID,
		Role:              role,
		RazorpayOrderID:   r.RazorpayOrderID,
		RazorpayPaymentID: r.RazorpayPaymentID,
		RazorpaySignature: r.RazorpaySignature,
	}
}

// VerifyPaymentResponse reports the settled booking state.
type VerifyPaymentResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
	PaymentID string `json:"paymentId"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *verifyPayment.Response) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		BookingID: result.BookingID,
		Status:    string(result.Status),
		PaymentID: result.PaymentID,
	}
}
