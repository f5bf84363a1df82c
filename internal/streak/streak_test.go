package streak

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFirstCompletion(t *testing.T) {
	next := Advance(State{}, day(0))

	if next.Current != 1 || next.Longest != 1 {
		t.Errorf("Expected 1/1 for first completion, got %d/%d", next.Current, next.Longest)
	}
	if next.LastActive == nil {
		t.Fatal("Expected LastActive to be set")
	}
	if next.LastActive.Hour() != 0 || next.LastActive.Minute() != 0 {
		t.Errorf("Expected LastActive at start of day, got %v", next.LastActive)
	}
}

func TestConsecutiveDayIncrements(t *testing.T) {
	state := State{Current: 5, Longest: 8, LastActive: timePtr(day(-1))}

	next := Advance(state, day(0))

	if next.Current != 6 {
		t.Errorf("Expected current streak 6, got %d", next.Current)
	}
	if next.Longest != 8 {
		t.Errorf("Expected longest unchanged at 8, got %d", next.Longest)
	}
}

func TestConsecutiveDayExtendsLongest(t *testing.T) {
	state := State{Current: 8, Longest: 8, LastActive: timePtr(day(-1))}

	next := Advance(state, day(0))

	if next.Current != 9 || next.Longest != 9 {
		t.Errorf("Expected 9/9, got %d/%d", next.Current, next.Longest)
	}
}

func TestSameDayIsNoOp(t *testing.T) {
	state := State{Current: 6, Longest: 8, LastActive: timePtr(day(0))}

	next := Advance(state, day(0))

	if next.Current != 6 || next.Longest != 8 {
		t.Errorf("Expected 6/8 unchanged, got %d/%d", next.Current, next.Longest)
	}
}

func TestGapResetsCurrentKeepsLongest(t *testing.T) {
	state := State{Current: 10, Longest: 10, LastActive: timePtr(day(-3))}

	next := Advance(state, day(0))

	if next.Current != 1 {
		t.Errorf("Expected current reset to 1, got %d", next.Current)
	}
	if next.Longest != 10 {
		t.Errorf("Expected longest kept at 10, got %d", next.Longest)
	}
}

func TestAdvanceIsIdempotentWithinADay(t *testing.T) {
	state := State{Current: 4, Longest: 4, LastActive: timePtr(day(-1))}

	once := Advance(state, day(0))
	twice := Advance(once, day(0))

	if once.Current != twice.Current || once.Longest != twice.Longest {
		t.Errorf("Expected second same-day advance to be a no-op: %d/%d vs %d/%d",
			once.Current, once.Longest, twice.Current, twice.Longest)
	}
}

func TestLongestIsMonotonic(t *testing.T) {
	// An arbitrary mix of continues, repeats and gaps.
	offsets := []int{0, 1, 2, 2, 3, 7, 8, 9, 10, 20, 21}

	state := State{}
	prevLongest := 0
	for _, off := range offsets {
		state = Advance(state, day(off))
		if state.Longest < prevLongest {
			t.Fatalf("Longest streak decreased from %d to %d at day offset %d",
				prevLongest, state.Longest, off)
		}
		prevLongest = state.Longest
	}

	if state.Longest != 4 {
		t.Errorf("Expected longest run of 4 (days 7-10), got %d", state.Longest)
	}
	if state.Current != 2 {
		t.Errorf("Expected current streak 2 (days 20-21), got %d", state.Current)
	}
}

func TestActiveToday(t *testing.T) {
	state := State{Current: 1, Longest: 1, LastActive: timePtr(day(0))}

	if !ActiveToday(state, day(0)) {
		t.Error("Expected ActiveToday true on the same day")
	}
	if ActiveToday(state, day(1)) {
		t.Error("Expected ActiveToday false on the next day")
	}
	if ActiveToday(State{}, day(0)) {
		t.Error("Expected ActiveToday false with no activity")
	}
}
