package get_schedule

import (
	"time"

	getSchedule "github.com/m04kA/TurfBookingService/internal/usecase/get_schedule"
)

// SlotResponse is one schedule entry. Virtual slots expose their
// deterministic identifier in place of a storage id.
type SlotResponse struct {
	ID        interface{} `json:"id"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Price     int         `json:"price"`
	Status    string      `json:"status"`
	LockedAt  *time.Time  `json:"lockedAt,omitempty"`
	Virtual   bool        `json:"virtual"`
}

// ScheduleResponse is the full day schedule.
type ScheduleResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *getSchedule.Response) *ScheduleResponse {
	resp := &ScheduleResponse{
		Date:  result.Date,
		Slots: make([]SlotResponse, 0, len(result.Slots)),
	}

	for _, s := range result.Slots {
		entry := SlotResponse{
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
			Status:    string(s.Status),
			LockedAt:  s.LockedAt,
			Virtual:   s.Virtual,
		}
		if s.Virtual {
			entry.ID = s.VirtualID
		} else {
			entry.ID = s.ID
		}
		resp.Slots = append(resp.Slots, entry)
	}

	return resp
}
