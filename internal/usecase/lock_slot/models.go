package lock_slot

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request locks one slot for a user. SlotRef accepts either a numeric
// storage id or a virtual identifier like "virtual-2025-07-14-18:00".
type Request struct {
	SlotRef string
	UserID  int64
	Role    domain.Role
}

// Response describes the lock the user now holds.
type Response struct {
	SlotID        int64
	Date          string
	StartTime     types.TimeString
	EndTime       types.TimeString
	Price         int
	Status        domain.SlotStatus
	LockExpiresAt time.Time
}

func newResponse(s *domain.Slot, ttl time.Duration) *Response {
	resp := &Response{
		SlotID:    s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Price:     s.Price,
		Status:    s.Status,
	}
	if s.LockedAt != nil {
		resp.LockExpiresAt = s.LockedAt.Add(ttl)
	}
	return resp
}
