package verify_booking

import (
	"context"

	verifyBooking "github.com/m04kA/TurfBookingService/internal/usecase/verify_booking"
)

// VerifyBookingUseCase applies an admin verdict to a booking.
type VerifyBookingUseCase interface {
	Execute(ctx context.Context, req *verifyBooking.Request) (*verifyBooking.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
