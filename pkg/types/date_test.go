package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2026-02-05").Validate())
	assert.Error(t, DateString("2026-2-5").Validate())
	assert.Error(t, DateString("05.02.2026").Validate())
	assert.Error(t, DateString("2026-02-30").Validate())
	assert.Error(t, DateString("").Validate())
}

func TestDateString_Comparisons(t *testing.T) {
	a := DateString("2026-02-05")
	b := DateString("2026-02-06")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2026-02-27")

	assert.Equal(t, DateString("2026-02-28"), d.AddDays(1))
	// 2026 is not a leap year
	assert.Equal(t, DateString("2026-03-01"), d.AddDays(2))
	assert.Equal(t, DateString("2026-02-26"), d.AddDays(-1))
}

func TestDateString_DaysUntil(t *testing.T) {
	assert.Equal(t, 3, DateString("2026-02-05").DaysUntil("2026-02-08"))
	assert.Equal(t, 0, DateString("2026-02-05").DaysUntil("2026-02-05"))
	assert.Equal(t, -1, DateString("2026-02-05").DaysUntil("2026-02-04"))
}

func TestDateString_Weekday(t *testing.T) {
	assert.Equal(t, time.Thursday, DateString("2026-02-05").Weekday())
	assert.Equal(t, time.Friday, DateString("2026-02-06").Weekday())
	assert.Equal(t, time.Saturday, DateString("2026-02-07").Weekday())
}

func TestDatesBetween_HalfOpen(t *testing.T) {
	got := DatesBetween("2026-02-05", "2026-02-08")

	require.Equal(t, []DateString{"2026-02-05", "2026-02-06", "2026-02-07"}, got)
}

func TestDatesBetween_EmptyForInvalidRange(t *testing.T) {
	assert.Empty(t, DatesBetween("2026-02-08", "2026-02-08"))
	assert.Empty(t, DatesBetween("2026-02-08", "2026-02-05"))
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2026, 2, 5, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, DateString("2026-02-05"), d)
}
