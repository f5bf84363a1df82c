package models

import (
	"testing"
)

func TestMarkingResolution(t *testing.T) {
	testCases := []struct {
		name            string
		questionMarks   float64
		questionPenalty float64
		expectedMarks   float64
		expectedPenalty float64
	}{
		{"scheme defaults apply", 0, 0, 4, 1},
		{"per-question marks win", 6, 0, 6, 1},
		{"per-question penalty wins", 0, 2, 4, 2},
		{"both overridden", 5, 2.5, 5, 2.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			question := &Question{
				Marks:         tc.questionMarks,
				NegativeMarks: tc.questionPenalty,
			}

			if got := question.MarksValue(4); got != tc.expectedMarks {
				t.Errorf("Expected marks %.1f, got %.1f", tc.expectedMarks, got)
			}
			if got := question.PenaltyValue(1); got != tc.expectedPenalty {
				t.Errorf("Expected penalty %.1f, got %.1f", tc.expectedPenalty, got)
			}
		})
	}
}

func TestHasValidCorrectOption(t *testing.T) {
	question := &Question{
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: 2,
	}
	if !question.HasValidCorrectOption() {
		t.Error("Expected correct option 2 of 4 to be valid")
	}

	question.CorrectOption = 4
	if question.HasValidCorrectOption() {
		t.Error("Expected out-of-range correct option to be invalid")
	}

	question.CorrectOption = -1
	if question.HasValidCorrectOption() {
		t.Error("Expected negative correct option to be invalid")
	}
}
