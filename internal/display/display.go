// Package display derives the values shown on detail pages from raw payload fields.
package display

import (
	"math"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used by the media database
const DateLayout = "2006-01-02"

// LongDateLayout renders dates as "January 2, 2006"
const LongDateLayout = "January 2, 2006"

// InvalidDate is shown when a date cannot be parsed
const InvalidDate = "Invalid date"

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsReleased reports whether date is on or before now. The date is read in now's
// location. Empty or malformed dates are never released.
func IsReleased(date string, now time.Time) bool {
	t, ok := ParseDate(date, now.Location())
	if !ok {
		return false
	}
	return !t.After(now)
}

// Percentage converts a 0-10 vote average to a whole percentage string, rounding
// halves up. Out-of-range averages are not clamped.
func Percentage(voteAverage float64) string {
	return strconv.FormatFloat(math.Floor(voteAverage*10+0.5), 'f', 0, 64)
}

// LongDate formats a YYYY-MM-DD date as "January 2, 2006".
func LongDate(date string) string {
	t, ok := ParseDate(date, time.UTC)
	if !ok {
		return InvalidDate
	}
	return t.Format(LongDateLayout)
}
