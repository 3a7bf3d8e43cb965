package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

func TestVirtualSlotID_RoundTrip(t *testing.T) {
	start := types.NewTimeStringFromHour(18)
	id := VirtualSlotID("2025-07-14", start)

	assert.Equal(t, "virtual-2025-07-14-18:00", id)
	assert.True(t, IsVirtualSlotID(id))

	date, parsed, err := ParseVirtualSlotID(id)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-14", date)
	assert.Equal(t, start, parsed)
}

func TestParseVirtualSlotID_Malformed(t *testing.T) {
	cases := []string{
		"virtual-",
		"virtual-2025-07-14",
		"virtual-2025-07-14-25:00",
		"virtual-not-a-date-18:00",
		"123",
	}
	for _, id := range cases {
		_, _, err := ParseVirtualSlotID(id)
		assert.Error(t, err, "expected error for %q", id)
	}
}

func TestIsVirtualSlotID(t *testing.T) {
	assert.True(t, IsVirtualSlotID("virtual-2025-07-14-05:00"))
	assert.False(t, IsVirtualSlotID("42"))
	assert.False(t, IsVirtualSlotID(""))
}

func TestSlotEndTime_WrapsMidnight(t *testing.T) {
	assert.Equal(t, "06:00", SlotEndTime(5).String())
	assert.Equal(t, "00:00", SlotEndTime(23).String())
}

func TestSlot_IsLockExpired(t *testing.T) {
	now := time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	fresh := now.Add(-5 * time.Minute)
	stale := now.Add(-11 * time.Minute)

	assert.False(t, (&Slot{Status: SlotLocked, LockedAt: &fresh}).IsLockExpired(now, ttl))
	assert.True(t, (&Slot{Status: SlotLocked, LockedAt: &stale}).IsLockExpired(now, ttl))
	assert.False(t, (&Slot{Status: SlotBooked, LockedAt: &stale}).IsLockExpired(now, ttl))
	assert.False(t, (&Slot{Status: SlotLocked}).IsLockExpired(now, ttl))
}

func TestSlot_IsLockable(t *testing.T) {
	assert.True(t, (&Slot{Status: SlotAvailable}).IsLockable(RoleUser))
	assert.False(t, (&Slot{Status: SlotBlocked}).IsLockable(RoleUser))
	assert.True(t, (&Slot{Status: SlotBlocked}).IsLockable(RoleAdmin))
	assert.False(t, (&Slot{Status: SlotBooked}).IsLockable(RoleAdmin))
}
