// Package schedule computes when a user's daily medication time next occurs.
package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, parsed from "HH:MM".
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a strict 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the time of day back to "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// NextOccurrence returns the next moment the given time of day occurs,
// today if it has not strictly passed yet, otherwise tomorrow.
// now == today's occurrence counts as "not yet passed".
func NextOccurrence(tod TimeOfDay, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour, tod.Minute, 0, 0, now.Location())
	if now.After(candidate) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate
}

// HoursUntil returns the number of whole hours from now until next,
// truncated toward zero. It drives the countdown cadence: a value of
// zero means one hour or less remains.
func HoursUntil(now, next time.Time) int {
	return int(next.Sub(now) / time.Hour)
}

// StartOfDay returns local midnight of the day containing t. Log entries
// at or after this instant fall inside the current adherence window.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
