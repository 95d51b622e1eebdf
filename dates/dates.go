// Package dates centralizes local-day calendar math. Every day-granularity
// value crossing a package boundary is either a YYYY-MM-DD key or a
// midnight-local time.Time produced here, so month windows and "today"
// boundaries are computed in exactly one place.
package dates

import (
	"fmt"
	"time"
)

// DayFormat is the canonical day-key layout.
const DayFormat = "2006-01-02"

// DayKey renders t as its local calendar day.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD key into a midnight-local time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return t, nil
}

// StartOfDay truncates t to midnight local time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns the day n calendar days after t (negative n steps back).
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// MonthStart returns midnight on the first day of the given month.
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
}

// MonthEnd returns midnight on the last day of the given month.
func MonthEnd(year, month int) time.Time {
	return MonthStart(year, month).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return MonthEnd(year, month).Day()
}

// DaysElapsed returns how many days of the month have passed as of today:
// the day-of-month for the current month, the full month length for past
// months, and 0 for months still entirely in the future.
func DaysElapsed(year, month int, today time.Time) int {
	today = StartOfDay(today)
	start := MonthStart(year, month)
	if today.Before(start) {
		return 0
	}
	if today.After(MonthEnd(year, month)) {
		return DaysInMonth(year, month)
	}
	return today.Day()
}

// IsFutureMonth reports whether the given month starts after today.
func IsFutureMonth(year, month int, today time.Time) bool {
	return StartOfDay(today).Before(MonthStart(year, month))
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
