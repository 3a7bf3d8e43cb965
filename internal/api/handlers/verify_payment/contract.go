package verify_payment

import (
	"context"

	verifyPayment "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
)

// VerifyPaymentUseCase settles a gateway-backed booking.
type VerifyPaymentUseCase interface {
	Execute(ctx context.Context, req *verifyPayment.Request) (*verifyPayment.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
