package submit_upi_payment

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotRepository is the storage surface the use case needs.
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error)
	SetStatusByIDs(ctx context.Context, ids []int64, status domain.SlotStatus) error
}

// BookingRepository persists the booking record.
// Create surfaces a UTR collision as storage.ErrDuplicateUTR.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TxManager runs a function inside a database transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
