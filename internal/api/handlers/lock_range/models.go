package lock_range

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	lockRange "github.com/m04kA/TurfBookingService/internal/usecase/lock_range"
)

// LockRangeRequest asks for a hold on [startHour, endHour) of one date.
type LockRangeRequest struct {
	Date      string `json:"date" validate:"required"`
	StartHour int    `json:"startHour" validate:"min=0,max=23"`
	EndHour   int    `json:"endHour" validate:"min=1,max=24"`
}

// ToUseCaseRequest converts the HTTP request into the use case shape.
func (r *LockRangeRequest) ToUseCaseRequest(userID int64, role domain.Role) *lockRange.Request {
	return &lockRange.Request{
		Date:      r.Date,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		UserID:    userID,
		Role:      role,
	}
}

// LockedSlotResponse is one acquired hold within the range.
type LockedSlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int    `json:"price"`
}

// LockRangeResponse describes the acquired range.
type LockRangeResponse struct {
	Date          string               `json:"date"`
	Slots         []LockedSlotResponse `json:"slots"`
	TotalAmount   int                  `json:"totalAmount"`
	LockExpiresAt time.Time            `json:"lockExpiresAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP shape.
func FromUseCaseResponse(result *lockRange.Response) *LockRangeResponse {
	resp := &LockRangeResponse{
		Date:          result.Date,
		Slots:         make([]LockedSlotResponse, 0, len(result.Slots)),
		TotalAmount:   result.TotalAmount,
		LockExpiresAt: result.LockExpiresAt,
	}
	for _, s := range result.Slots {
		resp.Slots = append(resp.Slots, LockedSlotResponse{
			SlotID:    s.SlotID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
		})
	}
	return resp
}
