package schedule

import (
	"time"
)

// DateLayout is the calendar-date format blocked dates and booking dates
// are exchanged in. Dates are tenant-local and carry no time component.
const DateLayout = "2006-01-02"

type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DaySchedule struct {
	IsOpen    bool          `json:"isOpen"`
	OpenTime  string        `json:"openTime"`
	CloseTime string        `json:"closeTime"`
	Breaks    []BreakWindow `json:"breaks,omitempty"`
}

// WeeklySchedule maps weekday 0 (Sunday) through 6 (Saturday) to a day's
// working hours. Missing weekdays mean the staff member is closed that day.
type WeeklySchedule map[time.Weekday]DaySchedule

func (w WeeklySchedule) DayFor(date time.Time) (DaySchedule, bool) {
	day, ok := w[date.Weekday()]
	return day, ok
}

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports half-open intersection: [a,b) and [c,d) overlap iff
// a < d && c < b. Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}
