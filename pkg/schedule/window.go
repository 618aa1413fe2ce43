// Package schedule holds the time-window rules for surplus promotions: window
// shape validation and the single canonical interval-overlap predicate.
package schedule

import (
	"errors"
	"time"
)

var (
	// ErrWindowInverted indicates the window ends at or before it starts.
	ErrWindowInverted = errors.New("sale end time must be after the start time")
	// ErrWindowInPast indicates the window starts in the past.
	ErrWindowInPast = errors.New("start time cannot be in the past")
)

// ValidateWindow enforces the shape rules for a promotion window: the end must
// be strictly after the start, and the start must not be before the current
// minute. "now" is truncated to the minute so a start typed a few seconds ago
// still passes.
func ValidateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return ErrWindowInverted
	}
	if start.Before(now.Truncate(time.Minute)) {
		return ErrWindowInPast
	}
	return nil
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] intersect. Touching endpoints count as an overlap; every
// overlap check in the system must go through this predicate so the definition
// cannot drift between call sites.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Contains reports whether the closed interval [start, end] contains t.
// This is the "active now" predicate for a promotion window.
func Contains(start, end, t time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
