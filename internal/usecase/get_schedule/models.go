package get_schedule

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request asks for the full day schedule of one date.
type Request struct {
	Date string // YYYY-MM-DD
}

// Response carries the reconciled schedule, sorted by start time.
type Response struct {
	Date  string
	Slots []SlotView
}

// SlotView is one schedule entry. Persisted slots carry their storage ID;
// virtual slots carry the deterministic virtual identifier instead.
type SlotView struct {
	ID        int64
	VirtualID string
	Date      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     int
	Status    domain.SlotStatus
	LockedAt  *time.Time
	BookedBy  *int64
	Virtual   bool
}

func newSlotView(s *domain.Slot) SlotView {
	view := SlotView{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Price:     s.Price,
		Status:    s.Status,
		LockedAt:  s.LockedAt,
		BookedBy:  s.BookedBy,
		Virtual:   s.Virtual,
	}
	if s.Virtual {
		view.VirtualID = domain.VirtualSlotID(s.Date, s.StartTime)
	}
	return view
}
