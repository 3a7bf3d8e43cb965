package domain

import "time"

// Pricing maps a start hour to a price tier. Pure, no side effects.
// Admin price overrides on persisted slots bypass this policy and are sticky.
type Pricing struct {
	BasePrice     int
	PeakPrice     int
	PeakStartHour int
}

// DefaultPricing returns the production price schedule.
func DefaultPricing() Pricing {
	return Pricing{
		BasePrice:     DefaultBasePrice,
		PeakPrice:     DefaultPeakPrice,
		PeakStartHour: DefaultPeakStartHour,
	}
}

// PriceForHour returns the hourly price for a slot starting at the given hour.
func (p Pricing) PriceForHour(hour int) int {
	if hour >= p.PeakStartHour {
		return p.PeakPrice
	}
	return p.BasePrice
}

// BusinessWindow is the default daily range of bookable start hours,
// inclusive on both ends. Hour 0 (midnight) is only an end boundary and is
// never a default start hour.
type BusinessWindow struct {
	OpenHour      int
	LastStartHour int
}

// DefaultBusinessWindow returns the 05:00-23:00 production window.
func DefaultBusinessWindow() BusinessWindow {
	return BusinessWindow{OpenHour: DefaultOpenHour, LastStartHour: DefaultLastStartHour}
}

// Contains reports whether hour is a valid default start hour.
func (w BusinessWindow) Contains(hour int) bool {
	return hour >= w.OpenHour && hour <= w.LastStartHour
}

// BusinessClock converts instants into the facility's wall-clock terms.
// The facility operates in a single fixed-offset timezone; callers' local
// timezones are irrelevant to availability decisions.
type BusinessClock struct {
	offset time.Duration
}

// NewBusinessClock creates a clock with the given fixed UTC offset in minutes.
func NewBusinessClock(offsetMinutes int) BusinessClock {
	return BusinessClock{offset: time.Duration(offsetMinutes) * time.Minute}
}

// ToBusinessTime shifts a UTC instant into business wall-clock time.
func (c BusinessClock) ToBusinessTime(now time.Time) time.Time {
	return now.UTC().Add(c.offset)
}

// Today returns the current business date as YYYY-MM-DD.
func (c BusinessClock) Today(now time.Time) string {
	return c.ToBusinessTime(now).Format(DateFormat)
}

// CurrentHour returns the current business hour (0-23).
func (c BusinessClock) CurrentHour(now time.Time) int {
	return c.ToBusinessTime(now).Hour()
}
