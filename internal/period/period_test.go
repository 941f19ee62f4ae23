package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsActive_Boundary(t *testing.T) {
	end := time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC)

	assert.True(t, IsActive(end, end.Add(-time.Hour)))
	assert.True(t, IsActive(end, end), "now == end is still active")
	assert.False(t, IsActive(end, end.Add(time.Millisecond)), "one ms past end is lapsed")
}

func TestEndOfDayUTC(t *testing.T) {
	t.Run("extends a date to the last nanosecond of the day", func(t *testing.T) {
		in := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		got := EndOfDayUTC(in)
		assert.Equal(t, time.Date(2026, 6, 15, 23, 59, 59, 999999999, time.UTC), got)
	})

	t.Run("normalizes zoned input to the UTC calendar day", func(t *testing.T) {
		// 15 Jun 01:00 IST is 14 Jun 19:30 UTC; the governing day is the 14th.
		ist := time.FixedZone("IST", 5*3600+1800)
		in := time.Date(2026, 6, 15, 1, 0, 0, 0, ist)
		got := EndOfDayUTC(in)
		assert.Equal(t, 14, got.Day())
	})

	t.Run("order ending today is active all day", func(t *testing.T) {
		end := EndOfDayUTC(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
		lateEvening := time.Date(2026, 6, 15, 23, 30, 0, 0, time.UTC)
		nextMorning := time.Date(2026, 6, 16, 0, 0, 1, 0, time.UTC)
		assert.True(t, IsActive(end, lateEvening))
		assert.False(t, IsActive(end, nextMorning))
	})
}

func TestUntil(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("floor-truncated components", func(t *testing.T) {
		end := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond)
		got := Until(end, now)
		assert.Equal(t, Remaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, got)
	})

	t.Run("zero duration is not completed", func(t *testing.T) {
		got := Until(now, now)
		assert.Equal(t, Remaining{}, got)
		assert.False(t, got.Completed)
	})

	t.Run("past end yields the completed sentinel", func(t *testing.T) {
		got := Until(now.Add(-time.Second), now)
		assert.True(t, got.Completed)
		assert.Zero(t, got.Days)
		assert.Zero(t, got.Seconds)
	})
}
