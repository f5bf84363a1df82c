package srs

import (
	"testing"
	"time"
)

var reviewTime = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestIntervalProgression(t *testing.T) {
	state := NewCardState(reviewTime)

	// Three perfect recalls: 1 day, 6 days, then interval * ease.
	state = Review(state, 5, reviewTime)
	if state.IntervalDays != 1 {
		t.Errorf("Expected first interval 1 day, got %d", state.IntervalDays)
	}

	state = Review(state, 5, reviewTime)
	if state.IntervalDays != 6 {
		t.Errorf("Expected second interval 6 days, got %d", state.IntervalDays)
	}

	state = Review(state, 5, reviewTime)
	if state.IntervalDays <= 6 {
		t.Errorf("Expected third interval to grow beyond 6 days, got %d", state.IntervalDays)
	}
	if state.Repetitions != 3 {
		t.Errorf("Expected 3 repetitions, got %d", state.Repetitions)
	}
}

func TestFailedRecallResets(t *testing.T) {
	state := NewCardState(reviewTime)
	state = Review(state, 5, reviewTime)
	state = Review(state, 5, reviewTime)

	state = Review(state, 1, reviewTime)

	if state.Repetitions != 0 {
		t.Errorf("Expected repetitions reset to 0, got %d", state.Repetitions)
	}
	if state.IntervalDays != 1 {
		t.Errorf("Expected interval reset to 1 day, got %d", state.IntervalDays)
	}

	wantDue := reviewTime.AddDate(0, 0, 1)
	if !state.DueAt.Equal(wantDue) {
		t.Errorf("Expected due %v, got %v", wantDue, state.DueAt)
	}
}

func TestEaseFactorFloor(t *testing.T) {
	state := NewCardState(reviewTime)

	// Repeated failures must never push the ease factor below the floor.
	for i := 0; i < 10; i++ {
		state = Review(state, 0, reviewTime)
	}

	if state.EaseFactor < MinEaseFactor {
		t.Errorf("Ease factor %.2f fell below floor %.2f", state.EaseFactor, MinEaseFactor)
	}
}

func TestQualityClamped(t *testing.T) {
	a := Review(NewCardState(reviewTime), 9, reviewTime)
	b := Review(NewCardState(reviewTime), 5, reviewTime)
	if a.EaseFactor != b.EaseFactor || a.IntervalDays != b.IntervalDays {
		t.Error("Expected quality above 5 to behave like 5")
	}

	c := Review(NewCardState(reviewTime), -3, reviewTime)
	d := Review(NewCardState(reviewTime), 0, reviewTime)
	if c.EaseFactor != d.EaseFactor || c.IntervalDays != d.IntervalDays {
		t.Error("Expected negative quality to behave like 0")
	}
}

func TestZeroEaseFactorSeeded(t *testing.T) {
	// States decoded from old documents may carry a zero ease factor.
	state := Review(CardState{}, 5, reviewTime)
	if state.EaseFactor < MinEaseFactor {
		t.Errorf("Expected seeded ease factor, got %.2f", state.EaseFactor)
	}
}
