package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotInput is one slot in an admin create request.
type SlotInput struct {
	Date      string `json:"date" validate:"required"`
	StartHour int    `json:"startHour" validate:"min=0,max=23"`
	// Price overrides the policy price when set.
	Price  *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	Status *string `json:"status,omitempty"`
}

// CreateSlotsRequest creates explicit slot records.
type CreateSlotsRequest struct {
	Slots []SlotInput `json:"slots" validate:"required,min=1,dive"`
}

// UpdateSlotRequest edits one slot. Nil fields stay unchanged.
type UpdateSlotRequest struct {
	Status *string `json:"status,omitempty"`
	Price  *int    `json:"price,omitempty" validate:"omitempty,min=0"`
}

// GenerateSlotsRequest persists the whole default window for one date.
type GenerateSlotsRequest struct {
	Date string `json:"date" validate:"required"`
}

// SlotResponse is the outward view of one slot.
type SlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Price     int       `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse wraps a slot collection.
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// FromDomainSlot converts a domain slot.
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Price:     s.Price,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList converts a domain slot collection.
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}
	return resp
}
