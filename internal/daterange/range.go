package daterange

import (
	"fmt"
	"time"
)

// Precision records how much of a date the source text actually stated.
type Precision int

const (
	// PrecisionDay means both ends name a specific day.
	PrecisionDay Precision = iota
	// PrecisionMonth means only a month and year were given.
	PrecisionMonth
	// PrecisionYear means only a year was given.
	PrecisionYear
)

// Range is an inclusive span of calendar days.
//
// Cancelled is carried on the range itself because a struck-through date in a
// series table cancels that occurrence independently of the convention name.
type Range struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Precision Precision `json:"precision"`
	Cancelled bool      `json:"cancelled,omitempty"`
}

// IsEmpty reports whether the range carries no dates.
func (r Range) IsEmpty() bool {
	return r.Start.IsZero()
}

// Days returns the number of calendar days covered, counting both ends.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Year returns the year the range starts in, or 0 for an empty range.
func (r Range) Year() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Start.Year()
}

// Compare orders ranges by start date, then by end date.
// Empty ranges sort before everything else.
func Compare(a, b Range) int {
	switch {
	case a.Start.Before(b.Start):
		return -1
	case a.Start.After(b.Start):
		return 1
	case a.End.Before(b.End):
		return -1
	case a.End.After(b.End):
		return 1
	}
	return 0
}

// String renders the range the way fannish wiki tables write them.
func (r Range) String() string {
	if r.IsEmpty() {
		return ""
	}
	switch r.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%d", r.Start.Year())
	case PrecisionMonth:
		return fmt.Sprintf("%s %d", r.Start.Month(), r.Start.Year())
	}

	s, e := r.Start, r.End
	switch {
	case s.Equal(e):
		return fmt.Sprintf("%s %d, %d", s.Month(), s.Day(), s.Year())
	case s.Year() != e.Year():
		return fmt.Sprintf("%s %d, %d-%s %d, %d", s.Month(), s.Day(), s.Year(), e.Month(), e.Day(), e.Year())
	case s.Month() != e.Month():
		return fmt.Sprintf("%s %d-%s %d, %d", s.Month(), s.Day(), e.Month(), e.Day(), s.Year())
	}
	return fmt.Sprintf("%s %d-%d, %d", s.Month(), s.Day(), e.Day(), s.Year())
}

// WithCancelled returns a copy of r with the cancelled flag set to c.
func (r Range) WithCancelled(c bool) Range {
	r.Cancelled = c
	return r
}

// date builds a UTC midnight time for the given calendar day.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
