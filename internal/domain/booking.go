package domain

import "time"

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	BookingPending             BookingStatus = "PENDING"
	BookingPendingVerification BookingStatus = "PENDING_VERIFICATION"
	BookingConfirmed           BookingStatus = "CONFIRMED"
	BookingCancelled           BookingStatus = "CANCELLED"
	BookingFailed              BookingStatus = "FAILED"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingPendingVerification, BookingConfirmed, BookingCancelled, BookingFailed:
		return true
	default:
		return false
	}
}

// PaymentMethod identifies the payment channel of a booking.
type PaymentMethod string

const (
	PaymentUPI      PaymentMethod = "UPI"
	PaymentRazorpay PaymentMethod = "RAZORPAY"
	PaymentDirect   PaymentMethod = "DIRECT"
)

// Booking is one reservation transaction, possibly spanning several
// contiguous slots of the same date. Bookings are created once and mutated
// only through status transitions; they are never deleted.
type Booking struct {
	ID     int64
	UserID *int64 // nil for guest bookings; GuestName/GuestPhone are set instead

	// SlotIDs reference the reserved slots in chronological hour order.
	SlotIDs []int64

	GuestName  *string
	GuestPhone *string

	// TotalAmount is the sum of slot prices at booking time, in INR.
	// It is never recomputed after creation.
	TotalAmount int

	Status BookingStatus

	// UTRNumber is the payer-supplied bank transfer reference for UPI
	// submissions; globally unique when present.
	UTRNumber *string

	PaymentMethod   PaymentMethod
	PaymentID       *string
	Screenshot      *string
	RazorpayOrderID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAwaitingVerification reports whether the booking waits for an admin decision.
func (b *Booking) IsAwaitingVerification() bool {
	return b.Status == BookingPendingVerification
}

// IsSettled reports whether the booking reached a terminal state.
func (b *Booking) IsSettled() bool {
	return b.Status == BookingConfirmed || b.Status == BookingCancelled || b.Status == BookingFailed
}

// Role identifies the caller's privilege level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the identity supplied by the auth layer with every mutating call.
// The engine trusts this input.
type User struct {
	ID    int64
	Name  string
	Phone string
	Role  Role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
