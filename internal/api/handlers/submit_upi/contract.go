package submit_upi

import (
	"context"

	submitUPI "github.com/m04kA/TurfBookingService/internal/usecase/submit_upi_payment"
)

// SubmitUPIPaymentUseCase creates a booking awaiting admin verification.
type SubmitUPIPaymentUseCase interface {
	Execute(ctx context.Context, req *submitUPI.Request) (*submitUPI.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
