package lock_range

import (
	"context"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// SlotRepository is the storage surface the use case needs.
type SlotRepository interface {
	CreateIfAbsent(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByDateAndStartTime(ctx context.Context, date string, startTime types.TimeString) (*domain.Slot, error)
	Lock(ctx context.Context, id int64, userID int64, now time.Time, allowBlocked bool) (*domain.Slot, error)
	// ReleaseByIDs is the compensation path: reverts partially acquired
	// locks when the range cannot be taken whole.
	ReleaseByIDs(ctx context.Context, ids []int64) error
	ReclaimExpiredLocks(ctx context.Context, cutoff time.Time) (int64, error)
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
