// Package streak tracks consecutive-day activity counters as a pure
// function of the previous state and the current day, decoupled from
// persistence so the transition rules can be tested directly.
package streak

import "time"

// State holds a user's streak counters. LastActive is nil for users who
// have never completed a daily activity.
type State struct {
	Current    int
	Longest    int
	LastActive *time.Time
}

// startOfDay truncates a time to its calendar-day boundary.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayDiff returns the number of whole calendar days between two start-of-day
// times.
func dayDiff(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Advance applies one completion event on the given day and returns the new
// state. The transitions:
//
//	no previous activity -> current = longest = 1
//	same day             -> unchanged
//	gap of one day       -> current++, longest = max(longest, current)
//	gap greater than one -> current resets to 1, longest kept
//
// LastActive is always set to the start of the given day.
func Advance(s State, now time.Time) State {
	today := startOfDay(now)
	next := State{Current: s.Current, Longest: s.Longest, LastActive: &today}

	if s.LastActive == nil {
		next.Current = 1
		if next.Longest < 1 {
			next.Longest = 1
		}
		return next
	}

	switch gap := dayDiff(startOfDay(*s.LastActive), today); {
	case gap == 0:
		last := *s.LastActive
		next.LastActive = &last
	case gap == 1:
		next.Current = s.Current + 1
		if next.Current > next.Longest {
			next.Longest = next.Current
		}
	default:
		next.Current = 1
	}

	return next
}

// ActiveToday reports whether the state already records activity on the
// given day.
func ActiveToday(s State, now time.Time) bool {
	if s.LastActive == nil {
		return false
	}
	return startOfDay(*s.LastActive).Equal(startOfDay(now))
}
