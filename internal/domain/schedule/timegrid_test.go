//go:build unit

package schedule_test

import (
	"testing"

	"slotbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	t.Run("valid clocks", func(t *testing.T) {
		cases := []struct {
			clock string
			want  int
		}{
			{"00:00", 0},
			{"09:00", 540},
			{"09:30", 570},
			{"12:45", 765},
			{"23:59", 1439},
		}
		for _, tc := range cases {
			got, err := schedule.ToMinutes(tc.clock)
			require.NoError(t, err, tc.clock)
			assert.Equal(t, tc.want, got, tc.clock)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, clock := range []string{"", "9:00", "09:0", "0900", "09-00", "ab:cd", "09:00:00", " 09:00"} {
			_, err := schedule.ToMinutes(clock)
			assert.ErrorIs(t, err, schedule.ErrInvalidClockFormat, clock)
		}
	})

	t.Run("rejects out-of-range fields", func(t *testing.T) {
		for _, clock := range []string{"24:00", "25:30", "09:60", "99:99"} {
			_, err := schedule.ToMinutes(clock)
			assert.ErrorIs(t, err, schedule.ErrInvalidClockFormat, clock)
		}
	})
}

func TestToClock(t *testing.T) {
	t.Run("zero pads", func(t *testing.T) {
		cases := []struct {
			minutes int
			want    string
		}{
			{0, "00:00"},
			{5, "00:05"},
			{540, "09:00"},
			{570, "09:30"},
			{1439, "23:59"},
		}
		for _, tc := range cases {
			got, err := schedule.ToClock(tc.minutes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("rejects out-of-range minutes", func(t *testing.T) {
		for _, minutes := range []int{-1, 1440, 2000} {
			_, err := schedule.ToClock(minutes)
			assert.ErrorIs(t, err, schedule.ErrClockOutOfRange)
		}
	})

	t.Run("round trips", func(t *testing.T) {
		for _, clock := range []string{"00:00", "08:15", "13:05", "23:59"} {
			minutes, err := schedule.ToMinutes(clock)
			require.NoError(t, err)
			back, err := schedule.ToClock(minutes)
			require.NoError(t, err)
			assert.Equal(t, clock, back)
		}
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b schedule.Interval
		want bool
	}{
		{"disjoint", schedule.Interval{Start: 540, End: 600}, schedule.Interval{Start: 600, End: 660}, false},
		{"touching boundaries do not overlap", schedule.Interval{Start: 600, End: 660}, schedule.Interval{Start: 540, End: 600}, false},
		{"partial overlap", schedule.Interval{Start: 540, End: 630}, schedule.Interval{Start: 600, End: 660}, true},
		{"containment", schedule.Interval{Start: 540, End: 720}, schedule.Interval{Start: 570, End: 600}, true},
		{"identical", schedule.Interval{Start: 540, End: 600}, schedule.Interval{Start: 540, End: 600}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}
