package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltylife/SL-RentalService/internal/domain"
	"github.com/saltylife/SL-RentalService/pkg/types"
)

func holdBooking(checkIn, checkOut types.DateString, expiresAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            "hold-1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        domain.StatusHold,
		HoldExpiresAt: &expiresAt,
	}
}

func TestBlockedSet_UnionOfSources(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	confirmed := &domain.Booking{
		ID:       "b-1",
		CheckIn:  "2026-01-10",
		CheckOut: "2026-01-12",
		Status:   domain.StatusConfirmed,
	}

	set := NewBlockedSet(
		[]types.DateString{"2026-01-05"},
		[]types.DateString{"2026-01-20"},
		[]*domain.Booking{confirmed},
		now,
	)

	assert.True(t, set.Contains("2026-01-05"))
	assert.True(t, set.Contains("2026-01-20"))
	assert.True(t, set.Contains("2026-01-10"))
	assert.True(t, set.Contains("2026-01-11"))
	// Check-out day stays free
	assert.False(t, set.Contains("2026-01-12"))
	assert.Equal(t, 4, set.Len())
}

func TestBlockedSet_ExpiredHoldIsIgnored(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	active := holdBooking("2026-01-10", "2026-01-11", now.Add(10*time.Minute))
	expired := holdBooking("2026-01-15", "2026-01-16", now.Add(-time.Minute))

	set := NewBlockedSet(nil, nil, []*domain.Booking{active, expired}, now)

	assert.True(t, set.Contains("2026-01-10"))
	assert.False(t, set.Contains("2026-01-15"))
}

func TestBlockedSet_HoldFreesDatesAfterExpiry(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	hold := holdBooking("2026-01-10", "2026-01-11", created.Add(30*time.Minute))

	before := NewBlockedSet(nil, nil, []*domain.Booking{hold}, created.Add(29*time.Minute))
	after := NewBlockedSet(nil, nil, []*domain.Booking{hold}, created.Add(31*time.Minute))

	assert.True(t, before.Contains("2026-01-10"))
	assert.False(t, after.Contains("2026-01-10"))
}

func TestBlockedSet_RangeFree(t *testing.T) {
	now := time.Now()
	set := NewBlockedSet([]types.DateString{"2026-01-12"}, nil, nil, now)

	// [10, 12) does not touch the blocked day
	assert.True(t, set.RangeFree("2026-01-10", "2026-01-12"))
	// [10, 13) includes it
	assert.False(t, set.RangeFree("2026-01-10", "2026-01-13"))
	// [12, 14) starts on it
	assert.False(t, set.RangeFree("2026-01-12", "2026-01-14"))
}

func TestValidateStay(t *testing.T) {
	now := time.Now()
	blocked := NewBlockedSet([]types.DateString{"2026-01-15"}, nil, nil, now)

	t.Run("valid stay", func(t *testing.T) {
		require.NoError(t, ValidateStay("2026-01-10", "2026-01-12", 1, blocked))
	})

	t.Run("missing dates", func(t *testing.T) {
		err := ValidateStay("", "2026-01-12", 1, blocked)
		assert.ErrorIs(t, err, ErrMissingDates)
	})

	t.Run("inverted range", func(t *testing.T) {
		err := ValidateStay("2026-01-12", "2026-01-10", 1, blocked)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("same day", func(t *testing.T) {
		err := ValidateStay("2026-01-10", "2026-01-10", 1, blocked)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("below minimum stay", func(t *testing.T) {
		err := ValidateStay("2026-01-10", "2026-01-11", 2, blocked)
		assert.ErrorIs(t, err, ErrBelowMinimumStay)
	})

	t.Run("dates unavailable", func(t *testing.T) {
		err := ValidateStay("2026-01-14", "2026-01-16", 1, blocked)
		assert.ErrorIs(t, err, ErrDatesUnavailable)
	})

	t.Run("checkout on blocked day is allowed", func(t *testing.T) {
		require.NoError(t, ValidateStay("2026-01-13", "2026-01-15", 1, blocked))
	})
}
