package appointments

import "time"

// Overlaps reports whether the two half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share any time. Touching ends do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WithinWindow reports whether the range fits inside the weekly window.
// The range must not cross midnight, a window never does either.
func WithinWindow(start, end time.Time, window AvailabilityWindow) bool {
	if start.Weekday() != window.Weekday {
		return false
	}
	if start.Day() != end.Day() || start.Month() != end.Month() || start.Year() != end.Year() {
		return false
	}
	startMinute := start.Hour()*60 + start.Minute()
	endMinute := end.Hour()*60 + end.Minute()
	return startMinute >= window.StartMinute && endMinute <= window.EndMinute
}

// WithinAnyWindow reports whether at least one window contains the range.
// No windows at all means the trainer did not restrict their schedule.
func WithinAnyWindow(start, end time.Time, windows []AvailabilityWindow) bool {
	if len(windows) == 0 {
		return true
	}
	for _, window := range windows {
		if WithinWindow(start, end, window) {
			return true
		}
	}
	return false
}

// ConflictsWith returns the first existing appointment overlapping the
// proposed range, or nil.
func ConflictsWith(start, end time.Time, existing []Appointment) *Appointment {
	for i := range existing {
		if Overlaps(start, end, existing[i].StartsAt, existing[i].EndsAt) {
			return &existing[i]
		}
	}
	return nil
}
