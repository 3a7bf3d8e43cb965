package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromHour(t *testing.T) {
	assert.Equal(t, "05:00", NewTimeStringFromHour(5).String())
	assert.Equal(t, "23:00", NewTimeStringFromHour(23).String())
	assert.Equal(t, "00:00", NewTimeStringFromHour(24).String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("bogus")
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	early := NewTimeStringFromHour(5)
	late := NewTimeStringFromHour(17)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := NewTimeStringFromHour(9)

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", end.String())
}
