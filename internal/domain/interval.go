package domain

import (
	"time"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap: a
// reservation ending exactly when another starts is not a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateInterval checks the basic shape of a reservation window.
func ValidateInterval(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && start.Before(end)
}

// DurationDays returns the ceiling of (end-start) in whole days.
// [day0 10:00, day2 10:00) is 2 days; any extra hour rounds up to 3.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
