package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrInvalidClockFormat = errors.New("invalid clock format, expected HH:MM")
	ErrClockOutOfRange    = errors.New("minutes out of range [0, 1440)")
)

var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

const minutesPerDay = 24 * 60

// ToMinutes parses a 24-hour "HH:MM" clock string to minutes since midnight.
func ToMinutes(clock string) (int, error) {
	m := clockPattern.FindStringSubmatch(clock)
	if m == nil {
		return 0, ErrInvalidClockFormat
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, ErrInvalidClockFormat
	}

	return hours*60 + minutes, nil
}

// ToClock is the inverse of ToMinutes, zero-padded.
func ToClock(minutes int) (string, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", ErrClockOutOfRange
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}
