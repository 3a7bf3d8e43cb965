package direct_booking

import (
	"context"

	directBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_direct_booking"
)

// CreateDirectBookingUseCase settles a walk-in booking in one step.
type CreateDirectBookingUseCase interface {
	Execute(ctx context.Context, req *directBooking.Request) (*directBooking.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
