package selection

import (
	"prep-service/internal/models"
	"testing"
)

func makePool() []models.Question {
	return []models.Question{
		{ID: "1", Prompt: "p1", Topic: "algebra", Difficulty: "easy"},
		{ID: "2", Prompt: "p2", Topic: "algebra", Difficulty: "hard"},
		{ID: "3", Prompt: "p3", Topic: "geometry", Difficulty: "easy"},
		{ID: "4", Prompt: "p4", Topic: "geometry", Difficulty: "hard"},
		{ID: "5", Prompt: "p5", Topic: "algebra", Difficulty: "easy"},
	}
}

func TestSelectRespectsCount(t *testing.T) {
	selector := NewSelector()

	result := selector.Select(makePool(), Criteria{Topic: "algebra", Count: 2})

	if len(result.Questions) != 2 {
		t.Errorf("Expected 2 questions, got %d", len(result.Questions))
	}
}

func TestSelectExcludesIDs(t *testing.T) {
	selector := NewSelector()

	criteria := Criteria{Topic: "algebra", Difficulty: "easy", Count: 5, ExcludeIDs: []string{"1", "5"}}
	result := selector.Select(makePool(), criteria)

	for _, q := range result.Questions {
		if q.ID == "1" || q.ID == "5" {
			t.Errorf("Excluded question %s was selected", q.ID)
		}
	}
}

func TestSelectRelaxesDifficultyWhenPoolTooSmall(t *testing.T) {
	selector := NewSelector()

	// Only two easy algebra questions exist; asking for three must relax
	// the difficulty filter instead of returning a short section.
	criteria := Criteria{Topic: "algebra", Difficulty: "easy", Count: 3}
	result := selector.Select(makePool(), criteria)

	if len(result.Questions) != 3 {
		t.Errorf("Expected 3 questions after relaxing difficulty, got %d", len(result.Questions))
	}
}

func TestSelectReturnsWholePoolWhenSmall(t *testing.T) {
	selector := NewSelector()

	result := selector.Select(makePool(), Criteria{Count: 50})

	if len(result.Questions) != 5 {
		t.Errorf("Expected all 5 questions, got %d", len(result.Questions))
	}
	if result.TotalCandidates != 5 {
		t.Errorf("Expected 5 candidates, got %d", result.TotalCandidates)
	}
}

func TestSelectDoesNotRepeatQuestions(t *testing.T) {
	selector := NewSelector()

	for i := 0; i < 20; i++ {
		result := selector.Select(makePool(), Criteria{Topic: "algebra", Count: 4})
		seen := make(map[string]bool)
		for _, q := range result.Questions {
			if seen[q.ID] {
				t.Fatalf("Question %s selected twice", q.ID)
			}
			seen[q.ID] = true
		}
	}
}
