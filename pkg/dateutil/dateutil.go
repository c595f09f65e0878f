// Package dateutil provides calendar arithmetic for leave intervals. All
// functions operate at day granularity: time-of-day components are truncated
// before comparison so callers may pass timestamps freely.
package dateutil

import "time"

// Truncate zeroes the time-of-day, keeping the date in its own location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// IsPastDate reports whether the date, at day granularity, is strictly
// before today.
func IsPastDate(t time.Time) bool {
	today := Truncate(time.Now())
	return Truncate(t).Before(today)
}

// BusinessDays returns the inclusive count of weekdays (Mon-Fri) in
// [start, end]. Returns 0 when start is after end.
func BusinessDays(start, end time.Time) int {
	day := Truncate(start)
	last := Truncate(end)

	count := 0
	for !day.After(last) {
		if !IsWeekend(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}
