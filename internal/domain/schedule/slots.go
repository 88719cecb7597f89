package schedule

import (
	"errors"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidStep     = errors.New("slot interval must be positive")
)

// AvailableSlots slides a candidate window of width durationMin across the
// day's open hours in steps of stepMin and returns the start times (as
// "HH:MM" strings, ascending) where the window overlaps neither a break nor
// a busy interval. A blocked date wins over everything else. No slot is
// emitted whose end would exceed closing time.
func AvailableSlots(day DaySchedule, blocked bool, durationMin, stepMin int, busy []Interval) ([]string, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if stepMin <= 0 {
		return nil, ErrInvalidStep
	}
	if blocked || !day.IsOpen {
		return []string{}, nil
	}

	openMin, err := ToMinutes(day.OpenTime)
	if err != nil {
		return nil, err
	}
	closeMin, err := ToMinutes(day.CloseTime)
	if err != nil {
		return nil, err
	}

	breaks := make([]Interval, 0, len(day.Breaks))
	for _, b := range day.Breaks {
		start, err := ToMinutes(b.Start)
		if err != nil {
			return nil, err
		}
		end, err := ToMinutes(b.End)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, Interval{Start: start, End: end})
	}

	slots := []string{}
	for start := openMin; start+durationMin <= closeMin; start += stepMin {
		candidate := Interval{Start: start, End: start + durationMin}
		if overlapsAny(candidate, breaks) || overlapsAny(candidate, busy) {
			continue
		}
		clock, err := ToClock(start)
		if err != nil {
			return nil, err
		}
		slots = append(slots, clock)
	}
	return slots, nil
}

func overlapsAny(candidate Interval, intervals []Interval) bool {
	for _, iv := range intervals {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
