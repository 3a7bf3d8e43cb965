package create_direct_booking

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// SlotRepository is the storage surface the use case needs.
type SlotRepository interface {
	// GetByDateAndStartTime locks the row FOR UPDATE when called inside
	// a transaction.
	GetByDateAndStartTime(ctx context.Context, date string, startTime types.TimeString) (*domain.Slot, error)
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	BookByIDs(ctx context.Context, ids []int64, userID int64) error
	// ReclaimExpiredLocks reverts stale LOCKED slots to AVAILABLE.
	ReclaimExpiredLocks(ctx context.Context, cutoff time.Time) (int64, error)
}

// BookingRepository persists the booking record.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// SheetExporter appends confirmed bookings to the export sink.
type SheetExporter interface {
	AppendRow(ctx context.Context, row sheets.Row) error
}

// TxManager runs a function inside a SERIALIZABLE transaction.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
