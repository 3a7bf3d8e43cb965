package lock_slot

import (
	"time"

	lockSlot "github.com/m04kA/TurfBookingService/internal/usecase/lock_slot"
)

// LockResponse describes the acquired hold.
type LockResponse struct {
	SlotID        int64     `json:"slotId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Price         int       `json:"price"`
	Status        string    `json:"status"`
	LockExpiresAt time.Time `json:"lockExpiresAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *lockSlot.Response) *LockResponse {
	return &LockResponse{
		SlotID:        result.SlotID,
		Date:          result.Date,
		StartTime:     result.StartTime.String(),
		EndTime:       result.EndTime.String(),
		Price:         result.Price,
		Status:        string(result.Status),
		LockExpiresAt: result.LockExpiresAt,
	}
}
