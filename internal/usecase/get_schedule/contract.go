package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotRepository is the storage surface the use case needs.
type SlotRepository interface {
	// ReclaimExpiredLocks reverts stale LOCKED slots to AVAILABLE.
	ReclaimExpiredLocks(ctx context.Context, cutoff time.Time) (int64, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Slot, error)
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
