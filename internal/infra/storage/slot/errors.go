package slot

import "errors"

var (
	// ErrSlotNotFound is returned when a slot does not exist.
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrDuplicateSlot is returned when the (date, start_time) uniqueness
	// constraint rejects an insert. The unique index is the final arbiter
	// for concurrent materialization races.
	ErrDuplicateSlot = errors.New("slot.repository: slot already exists for this date and time")

	// ErrSlotNotLockable is returned when a conditional lock update matches
	// no row because the slot is no longer in a lockable status.
	ErrSlotNotLockable = errors.New("slot.repository: slot is not in a lockable status")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
