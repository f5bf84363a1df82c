package service

import (
	"context"
	"testing"

	"prep-service/internal/models"
	"prep-service/internal/scoring"
)

func TestCreateTestRejectsEmptyTest(t *testing.T) {
	svc := &MockTestService{scheme: scoring.StandardMockTestScheme()}

	cases := []struct {
		name string
		test models.MockTest
	}{
		{"no sections", models.MockTest{Title: "Empty"}},
		{"sections without questions", models.MockTest{
			Title:    "Hollow",
			Sections: []models.Section{{Title: "A"}, {Title: "B"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.CreateTest(context.Background(), &tc.test); err == nil {
				t.Error("Expected an error for a test with no questions")
			}
		})
	}
}

func TestCreateTestRejectsInvalidCorrectOption(t *testing.T) {
	svc := &MockTestService{scheme: scoring.StandardMockTestScheme()}

	test := models.MockTest{
		Title: "Broken",
		Sections: []models.Section{{
			Title: "S",
			Questions: []models.Question{{
				Prompt:        "q",
				Options:       []string{"A", "B"},
				CorrectOption: 5,
			}},
		}},
	}

	if err := svc.CreateTest(context.Background(), &test); err == nil {
		t.Error("Expected an error for an out-of-range correct option")
	}
}

func TestFillDerivedMarksSumsSections(t *testing.T) {
	svc := &MockTestService{scheme: scoring.StandardMockTestScheme()}

	test := models.MockTest{
		Sections: []models.Section{
			{Questions: []models.Question{{Options: []string{"A", "B"}}, {Options: []string{"A", "B"}, Marks: 6}}},
			{Questions: []models.Question{{Options: []string{"A", "B"}}}},
		},
	}
	svc.fillDerivedMarks(&test)

	if test.Sections[0].TotalMarks != 10 {
		t.Errorf("Expected section total 10 (4 + 6), got %.2f", test.Sections[0].TotalMarks)
	}
	if test.TotalMarks != 14 {
		t.Errorf("Expected test total 14, got %.2f", test.TotalMarks)
	}
	if test.QuestionCount() != 3 {
		t.Errorf("Expected 3 questions, got %d", test.QuestionCount())
	}
}
