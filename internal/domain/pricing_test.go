package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPricing_PriceForHour(t *testing.T) {
	p := DefaultPricing()

	assert.Equal(t, 300, p.PriceForHour(5))
	assert.Equal(t, 300, p.PriceForHour(12))
	assert.Equal(t, 300, p.PriceForHour(16))
	assert.Equal(t, 400, p.PriceForHour(17))
	assert.Equal(t, 400, p.PriceForHour(23))
}

func TestBusinessWindow_Contains(t *testing.T) {
	w := DefaultBusinessWindow()

	assert.False(t, w.Contains(4))
	assert.True(t, w.Contains(5))
	assert.True(t, w.Contains(23))
	assert.False(t, w.Contains(24))
	assert.False(t, w.Contains(0))
}

func TestBusinessClock_IST(t *testing.T) {
	clock := NewBusinessClock(330)

	// 20:00 UTC is 01:30 IST next day.
	now := time.Date(2025, 7, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-07-15", clock.Today(now))
	assert.Equal(t, 1, clock.CurrentHour(now))
}

func TestBusinessClock_SameDay(t *testing.T) {
	clock := NewBusinessClock(330)

	// 08:30 UTC is 14:00 IST.
	now := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-07-14", clock.Today(now))
	assert.Equal(t, 14, clock.CurrentHour(now))
}
