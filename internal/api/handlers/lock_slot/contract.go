package lock_slot

import (
	"context"

	lockSlot "github.com/m04kA/TurfBookingService/internal/usecase/lock_slot"
)

// LockSlotUseCase places a hold on a single slot.
type LockSlotUseCase interface {
	Execute(ctx context.Context, req *lockSlot.Request) (*lockSlot.Response, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
