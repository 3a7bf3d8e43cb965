package models

import (
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotDetails is a resolved slot reference inside a booking view.
type SlotDetails struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int    `json:"price"`
	Status    string `json:"status"`
}

// BookingResponse is the outward view of one booking.
type BookingResponse struct {
	ID            int64         `json:"id"`
	UserID        *int64        `json:"userId,omitempty"`
	GuestName     *string       `json:"guestName,omitempty"`
	GuestPhone    *string       `json:"guestPhone,omitempty"`
	Slots         []SlotDetails `json:"slots"`
	TotalAmount   int           `json:"totalAmount"`
	Status        string        `json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	UTRNumber     *string       `json:"utrNumber,omitempty"`
	PaymentID     *string       `json:"paymentId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BookingListResponse wraps a booking collection.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking converts a domain booking plus its resolved slots.
func FromDomainBooking(b *domain.Booking, slots []*domain.Slot) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		Slots:         make([]SlotDetails, 0, len(slots)),
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		UTRNumber:     b.UTRNumber,
		PaymentID:     b.PaymentID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotDetails{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
			Status:    string(s.Status),
		})
	}

	return resp
}
