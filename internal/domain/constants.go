package domain

import "time"

// Default business parameters. All of them are configurable through
// config.toml; these values mirror the facility's production setup.
const (
	// DefaultOpenHour is the first bookable hour of the default window.
	DefaultOpenHour = 5
	// DefaultLastStartHour is the last bookable start hour (23:00-00:00 slot).
	DefaultLastStartHour = 23

	// DefaultBasePrice is the hourly price before peak hours, in INR.
	DefaultBasePrice = 300
	// DefaultPeakPrice is the hourly price from the peak hour onwards, in INR.
	DefaultPeakPrice = 400
	// DefaultPeakStartHour is the first hour billed at the peak price (17:00 = 5 PM).
	DefaultPeakStartHour = 17

	// DefaultLockTTL is how long a LOCKED slot is held before reclamation.
	DefaultLockTTL = 10 * time.Minute

	// DefaultBusinessUTCOffsetMinutes is IST (+05:30).
	DefaultBusinessUTCOffsetMinutes = 330
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HeldSlotStatuses are slot statuses that correspond to a live booking claim.
// The lock reclamation sweep must never touch PENDING_CONFIRMATION or BOOKED
// rows; only stale LOCKED rows are reverted.
var HeldSlotStatuses = []SlotStatus{
	SlotLocked,
	SlotPendingConfirmation,
	SlotBooked,
}
