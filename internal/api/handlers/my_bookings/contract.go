package my_bookings

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

// BookingsService is the read service behind the handler.
type BookingsService interface {
	GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
