package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a string does not match the HH:MM format.
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is stored and compared as a zero-padded string, which makes
// lexicographic ordering equal to chronological ordering.
type TimeString string

// NewTimeString builds a TimeString from a time.Time, truncating seconds.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromHour builds a zero-padded "HH:00" TimeString.
// Hour 24 wraps to "00:00" (end of day).
func NewTimeStringFromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour%24))
}

// Validate checks the HH:MM format and field ranges.
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return ErrInvalidTimeString
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ErrInvalidTimeString
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ErrInvalidTimeString
	}

	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Hour returns the hour component (0-23).
func (t TimeString) Hour() int {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	return hour
}

// Minute returns the minute component (0-59).
func (t TimeString) Minute() int {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return minute
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result stays within a single day; overflow past midnight is an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Hour()*60 + t.Minute() + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: result out of day range", ErrInvalidTimeString)
	}

	// 24:00 is represented as 00:00 (end of day).
	hour := (total / 60) % 24
	minute := total % 60

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String implements fmt.Stringer.
func (t TimeString) String() string {
	return string(t)
}
