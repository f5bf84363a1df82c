// Package srs computes spaced-repetition review schedules for flashcards.
// The algorithm is the SM-2 family: ease factor adjusted by recall quality,
// intervals of 1 day, 6 days, then interval * ease.
package srs

import (
	"math"
	"time"
)

const (
	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3

	// DefaultEaseFactor seeds new cards.
	DefaultEaseFactor = 2.5

	// MaxQuality is the top of the 0-5 recall quality scale.
	MaxQuality = 5

	// passingQuality is the lowest quality that counts as a successful
	// recall; anything below resets the repetition sequence.
	passingQuality = 3
)

// CardState is the scheduling state of one card for one user.
type CardState struct {
	Repetitions  int
	EaseFactor   float64
	IntervalDays int
	DueAt        time.Time
}

// NewCardState returns the state for a card that has never been reviewed.
func NewCardState(now time.Time) CardState {
	return CardState{
		EaseFactor: DefaultEaseFactor,
		DueAt:      now,
	}
}

// Review applies one recall event with the given quality (0-5, clamped) and
// returns the next state. A failed recall resets repetitions and schedules
// the card for tomorrow; successful recalls grow the interval by the ease
// factor.
func Review(s CardState, quality int, now time.Time) CardState {
	if quality < 0 {
		quality = 0
	}
	if quality > MaxQuality {
		quality = MaxQuality
	}

	next := s
	if next.EaseFactor == 0 {
		next.EaseFactor = DefaultEaseFactor
	}

	// Standard SM-2 ease adjustment, applied on every review.
	diff := float64(MaxQuality - quality)
	next.EaseFactor += 0.1 - diff*(0.08+diff*0.02)
	if next.EaseFactor < MinEaseFactor {
		next.EaseFactor = MinEaseFactor
	}

	if quality < passingQuality {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EaseFactor))
			if next.IntervalDays < 1 {
				next.IntervalDays = 1
			}
		}
	}

	next.DueAt = now.AddDate(0, 0, next.IntervalDays)
	return next
}
