package create_booking

import (
	"context"

	createBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
)

// CreateBookingUseCase turns held slots into a pending booking.
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
