package bookings

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}

// SlotRepository resolves slot references into full slot records.
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
