package generator

import (
	"testing"
)

func TestParseQuestionsStringAnswer(t *testing.T) {
	raw := `[{"question": "2+2?", "options": ["3", "4", "5", "6"], "correctAnswer": "4", "explanation": "basic arithmetic"}]`

	questions, err := ParseQuestions(raw, "maths", "easy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.CorrectOption != 1 {
		t.Errorf("Expected correct option index 1, got %d", q.CorrectOption)
	}
	if !q.AIGenerated {
		t.Error("Expected AIGenerated flag to be set")
	}
	if q.Topic != "maths" || q.Difficulty != "easy" {
		t.Errorf("Expected topic/difficulty to be stamped, got %q/%q", q.Topic, q.Difficulty)
	}
}

func TestParseQuestionsIndexAnswer(t *testing.T) {
	raw := `[{"question": "capital of France?", "options": ["Lyon", "Paris", "Nice", "Lille"], "correctAnswer": 1}]`

	questions, err := ParseQuestions(raw, "geography", "easy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if questions[0].CorrectOption != 1 {
		t.Errorf("Expected correct option index 1, got %d", questions[0].CorrectOption)
	}
}

func TestParseQuestionsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"question\": \"q\", \"options\": [\"a\", \"b\"], \"correctAnswer\": \"a\"}]\n```"

	questions, err := ParseQuestions(raw, "t", "medium")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if questions[0].CorrectOption != 0 {
		t.Errorf("Expected correct option index 0, got %d", questions[0].CorrectOption)
	}
}

func TestParseQuestionsRejectsBadContent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "here are your questions!"},
		{"empty array", "[]"},
		{"unmatched answer", `[{"question": "q", "options": ["a", "b"], "correctAnswer": "c"}]`},
		{"index out of range", `[{"question": "q", "options": ["a", "b"], "correctAnswer": 5}]`},
		{"too few options", `[{"question": "q", "options": ["a"], "correctAnswer": "a"}]`},
		{"missing prompt", `[{"question": "", "options": ["a", "b"], "correctAnswer": "a"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseQuestions(tc.raw, "t", "easy"); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseFlashcards(t *testing.T) {
	raw := `[{"front": "HTTP", "back": "HyperText Transfer Protocol", "hint": "web"}]`

	cards, err := ParseFlashcards(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cards[0].Front != "HTTP" {
		t.Errorf("Unexpected front: %q", cards[0].Front)
	}

	if _, err := ParseFlashcards(`[{"front": "x", "back": ""}]`); err == nil {
		t.Error("Expected error for card missing a back")
	}
}

func TestParseInterviewQuestions(t *testing.T) {
	raw := `[{"question": "Explain goroutines", "modelAnswer": "Lightweight threads managed by the runtime", "difficulty": "medium"}]`

	questions, err := ParseInterviewQuestions(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if questions[0].ModelAnswer == "" {
		t.Error("Expected model answer to be populated")
	}
}

func TestParseResumeReviewClampsScore(t *testing.T) {
	feedback, score, err := ParseResumeReview(`{"feedback": "solid", "score": 140}`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if feedback != "solid" {
		t.Errorf("Unexpected feedback: %q", feedback)
	}
	if score != 100 {
		t.Errorf("Expected score clamped to 100, got %.1f", score)
	}

	if _, _, err := ParseResumeReview(`{"score": 50}`); err == nil {
		t.Error("Expected error for review without feedback")
	}
}
