package lock_range

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request locks every hourly slot with a start hour in
// [StartHour, EndHour) on one date.
type Request struct {
	Date      string
	StartHour int
	EndHour   int
	UserID    int64
	Role      domain.Role
}

// LockedSlot is one acquired hold within the range.
type LockedSlot struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     int
}

// Response describes the acquired range.
type Response struct {
	Date          string
	Slots         []LockedSlot
	TotalAmount   int
	LockExpiresAt time.Time
}
