package report

import "time"

// DefaultWindowDays is the look-back used when no start date is given.
const DefaultWindowDays = 30

// DateRange is inclusive on both ends and holds calendar dates at UTC midnight.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange swaps the bounds when start is after end.
func NewDateRange(start, end time.Time) DateRange {
	start, end = dateOf(start), dateOf(end)
	if start.After(end) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}
}

// ResolveDateRange fills missing bounds: end defaults to today, start to
// DefaultWindowDays before today.
func ResolveDateRange(start, end *time.Time, today time.Time) DateRange {
	today = dateOf(today)
	s := today.AddDate(0, 0, -DefaultWindowDays)
	e := today
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return NewDateRange(s, e)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
