package lock_range

import (
	"context"

	lockRange "github.com/m04kA/TurfBookingService/internal/usecase/lock_range"
)

// LockRangeUseCase places an all-or-nothing hold on a range of slots.
type LockRangeUseCase interface {
	Execute(ctx context.Context, req *lockRange.Request) (*lockRange.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
