package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// SlotStatus represents the lifecycle state of a slot.
type SlotStatus string

const (
	SlotAvailable           SlotStatus = "AVAILABLE"
	SlotLocked              SlotStatus = "LOCKED"
	SlotPendingConfirmation SlotStatus = "PENDING_CONFIRMATION"
	SlotBooked              SlotStatus = "BOOKED"
	SlotBlocked             SlotStatus = "BLOCKED"
)

// ValidSlotStatus reports whether s is a known slot status.
func ValidSlotStatus(s SlotStatus) bool {
	switch s {
	case SlotAvailable, SlotLocked, SlotPendingConfirmation, SlotBooked, SlotBlocked:
		return true
	default:
		return false
	}
}

// Slot is one bookable hour window on one calendar date.
// At most one persisted slot exists per (date, startTime) pair; hours of the
// default business window without a persisted record are synthesized on read
// as virtual slots and materialized only when locked, booked or edited.
type Slot struct {
	ID        int64
	Date      string           // YYYY-MM-DD
	StartTime types.TimeString // HH:00
	EndTime   types.TimeString // HH:00, wraps to 00:00 after hour 23
	Price     int              // INR
	Status    SlotStatus
	LockedAt  *time.Time
	BookedBy  *int64

	// Virtual marks a slot that exists only as a read-time view, not in storage.
	Virtual bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable reports whether the slot can be locked by a regular user.
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsLockable reports whether the slot can be locked by the given role.
// Admins may override a BLOCKED slot.
func (s *Slot) IsLockable(role Role) bool {
	if s.Status == SlotAvailable {
		return true
	}
	return role == RoleAdmin && s.Status == SlotBlocked
}

// IsLockExpired reports whether a LOCKED slot has outlived its TTL at the
// given moment. Non-LOCKED slots are never expired.
func (s *Slot) IsLockExpired(now time.Time, ttl time.Duration) bool {
	if s.Status != SlotLocked || s.LockedAt == nil {
		return false
	}
	return now.Sub(*s.LockedAt) > ttl
}

// IsLockedBy reports whether the slot is LOCKED and held by the given user.
func (s *Slot) IsLockedBy(userID int64) bool {
	return s.Status == SlotLocked && s.BookedBy != nil && *s.BookedBy == userID
}

const virtualIDPrefix = "virtual-"

// VirtualSlotID builds the deterministic identifier of a not-yet-persisted
// slot: "virtual-<YYYY-MM-DD>-<HH:00>".
func VirtualSlotID(date string, startTime types.TimeString) string {
	return fmt.Sprintf("%s%s-%s", virtualIDPrefix, date, startTime)
}

// IsVirtualSlotID reports whether id refers to a virtual slot.
func IsVirtualSlotID(id string) bool {
	return strings.HasPrefix(id, virtualIDPrefix)
}

// ParseVirtualSlotID splits a virtual identifier back into (date, startTime).
func ParseVirtualSlotID(id string) (date string, startTime types.TimeString, err error) {
	raw := strings.TrimPrefix(id, virtualIDPrefix)
	if raw == id {
		return "", "", fmt.Errorf("not a virtual slot id: %s", id)
	}

	// virtual-2025-01-31-17:00 → the date is the first three dash-separated parts.
	parts := strings.Split(raw, "-")
	if len(parts) != 4 {
		return "", "", fmt.Errorf("malformed virtual slot id: %s", id)
	}

	date = strings.Join(parts[:3], "-")
	if _, err := time.Parse(DateFormat, date); err != nil {
		return "", "", fmt.Errorf("malformed virtual slot id date: %s", id)
	}

	startTime, err = types.NewTimeStringFromString(parts[3])
	if err != nil {
		return "", "", fmt.Errorf("malformed virtual slot id time: %s", id)
	}

	return date, startTime, nil
}

// SlotEndTime returns the end boundary for a slot starting at the given hour.
// The hour after 23:00 wraps to 00:00 (midnight).
func SlotEndTime(startHour int) types.TimeString {
	return types.NewTimeStringFromHour(startHour + 1)
}
