package insights

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the canonical calendar-date format used everywhere in the
// engine. Dates are timezone-naive: all arithmetic is whole-calendar-day
// arithmetic on dates anchored at noon UTC, never elapsed-duration math.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("insights: invalid date")

// Weekday indices: Sunday = 0 .. Saturday = 6, matching the stored schedules.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayName returns the full display name for a 0-6 weekday index.
func WeekdayName(dow int) string {
	if dow < 0 || dow > 6 {
		return ""
	}
	return weekdayNames[dow]
}

// WeekdayAbbrev returns the 3-letter display label for a 0-6 weekday index.
func WeekdayAbbrev(dow int) string {
	if dow < 0 || dow > 6 {
		return ""
	}
	return weekdayAbbrevs[dow]
}

// ParseDate parses a strict YYYY-MM-DD string into a date anchored at noon
// UTC. Malformed input is a loud error; silently coercing a bad date would
// corrupt streak math invisibly.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayOfWeek returns the 0-6 weekday index (Sunday = 0) of t.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// AddDays offsets t by n whole calendar days, rolling over month and year
// boundaries.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from a to b
// (positive when b is later). The noon anchor makes the division immune to
// daylight-saving transitions shortening or lengthening a day.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
