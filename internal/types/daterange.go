// README: Half-open calendar date range shared by availability and pricing.
package types

import "time"

// DateRange is a half-open interval [Start, End): the start date is part of
// the rental, the end date is the return day and is not charged.
// Both bounds are calendar dates; time-of-day is dropped on construction.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange builds a DateRange from two timestamps, dropping time-of-day.
// Validity (end after start) is checked by callers via Valid.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOnly(start), End: DateOnly(end)}
}

// Valid reports whether the range covers at least one day.
func (r DateRange) Valid() bool {
	return r.Start.Before(r.End)
}

// Days returns the number of charged days. A partial last day counts as a
// full day; a valid range is always at least one day.
func (r DateRange) Days() int64 {
	d := r.End.Sub(r.Start)
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 && r.Valid() {
		days = 1
	}
	return days
}

// Overlaps reports interval intersection of two half-open ranges:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether the calendar date of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(r.Start) && d.Before(r.End)
}
