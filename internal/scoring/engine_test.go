package scoring

import (
	"math"
	"prep-service/internal/models"
	"testing"
)

func intPtr(v int) *int {
	return &v
}

func makeQuestions(correct ...int) []models.Question {
	questions := make([]models.Question, len(correct))
	for i, c := range correct {
		questions[i] = models.Question{
			Prompt:        "q",
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: c,
		}
	}
	return questions
}

func TestEvaluateQuizPartiallyCorrect(t *testing.T) {
	// 4 questions, answers [A, B, nil, D] against correct [A, B, C, C]
	questions := makeQuestions(0, 1, 2, 2)
	answers := []*int{intPtr(0), intPtr(1), nil, intPtr(3)}

	report := EvaluateQuiz(questions, answers)

	if report.CorrectAnswers != 2 {
		t.Errorf("Expected 2 correct, got %d", report.CorrectAnswers)
	}
	if report.TotalQuestions != 4 {
		t.Errorf("Expected 4 total questions, got %d", report.TotalQuestions)
	}
	if report.Percentage != 50 {
		t.Errorf("Expected 50%%, got %.2f", report.Percentage)
	}
	if report.Attempted != 3 {
		t.Errorf("Expected 3 attempted, got %d", report.Attempted)
	}
}

func TestEvaluateQuizScoreIsThePercentage(t *testing.T) {
	// A quiz score is reported as the percentage, never the correct count.
	questions := makeQuestions(0, 1, 2, 2)
	answers := []*int{intPtr(0), intPtr(1), nil, intPtr(3)}

	report := EvaluateQuiz(questions, answers)

	if report.Score != 50 {
		t.Errorf("Expected quiz score 50 (the percentage), got %.2f", report.Score)
	}
	if report.Score != report.Percentage {
		t.Errorf("Expected quiz score %.2f to equal percentage %.2f", report.Score, report.Percentage)
	}
}

func TestEvaluateQuizHasNoNegativeMarking(t *testing.T) {
	questions := makeQuestions(0, 0)
	answers := []*int{intPtr(1), intPtr(2)}

	report := EvaluateQuiz(questions, answers)

	if report.Score != 0 {
		t.Errorf("Expected score 0 for all-wrong quiz, got %.2f", report.Score)
	}
	if report.Percentage != 0 {
		t.Errorf("Expected 0%%, got %.2f", report.Percentage)
	}
}

func TestMockTestNegativeMarking(t *testing.T) {
	// One section, 2 questions at +4/-1, answers [correct, wrong].
	sections := []models.Section{{Title: "Physics", Questions: makeQuestions(0, 1)}}
	answers := [][]*int{{intPtr(0), intPtr(3)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != 3 {
		t.Errorf("Expected raw score 3 (4 - 1), got %.2f", report.Score)
	}
	if math.Abs(report.Percentage-37.5) > 0.001 {
		t.Errorf("Expected 37.5%%, got %.2f", report.Percentage)
	}
	if report.CorrectAnswers != 1 {
		t.Errorf("Expected 1 correct, got %d", report.CorrectAnswers)
	}
}

func TestMockTestNegativeRawScoreClampedPercentage(t *testing.T) {
	sections := []models.Section{{Title: "Chemistry", Questions: makeQuestions(0, 0)}}
	answers := [][]*int{{intPtr(1), intPtr(2)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != -2 {
		t.Errorf("Expected raw score -2, got %.2f", report.Score)
	}
	if report.Percentage != 0 {
		t.Errorf("Expected percentage clamped to 0, got %.2f", report.Percentage)
	}
}

func TestUnansweredQuestionsContributeNothing(t *testing.T) {
	sections := []models.Section{{Title: "Maths", Questions: makeQuestions(0, 1, 2)}}
	// Answer slice shorter than the question list: trailing questions are
	// unanswered, not wrong.
	answers := [][]*int{{intPtr(0)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != 4 {
		t.Errorf("Expected score 4 with no penalty for unanswered, got %.2f", report.Score)
	}
	if report.Attempted != 1 {
		t.Errorf("Expected 1 attempted, got %d", report.Attempted)
	}
	if report.CorrectAnswers != 1 {
		t.Errorf("Expected 1 correct, got %d", report.CorrectAnswers)
	}
}

func TestMissingSectionAnswersTreatedAsUnanswered(t *testing.T) {
	sections := []models.Section{
		{Title: "A", Questions: makeQuestions(0)},
		{Title: "B", Questions: makeQuestions(1, 1)},
	}
	answers := [][]*int{{intPtr(0)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != 4 {
		t.Errorf("Expected score 4, got %.2f", report.Score)
	}
	if report.TotalQuestions != 3 {
		t.Errorf("Expected 3 total questions, got %d", report.TotalQuestions)
	}
}

func TestPerQuestionMarkingOverridesScheme(t *testing.T) {
	questions := makeQuestions(0, 0)
	questions[0].Marks = 6
	questions[1].NegativeMarks = 2
	sections := []models.Section{{Title: "Custom", Questions: questions}}
	answers := [][]*int{{intPtr(0), intPtr(1)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != 4 {
		t.Errorf("Expected score 4 (6 - 2), got %.2f", report.Score)
	}
	if report.MaxMarks != 10 {
		t.Errorf("Expected max marks 10 (6 + 4), got %.2f", report.MaxMarks)
	}
}

func TestOutOfRangeAnswerIsIncorrect(t *testing.T) {
	sections := []models.Section{{Title: "S", Questions: makeQuestions(0)}}
	answers := [][]*int{{intPtr(42)}}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if report.Score != -1 {
		t.Errorf("Expected malformed answer to score -1, got %.2f", report.Score)
	}
	if report.CorrectAnswers != 0 {
		t.Errorf("Expected 0 correct, got %d", report.CorrectAnswers)
	}
}

func TestPercentageZeroQuestions(t *testing.T) {
	report := EvaluateMockTest(nil, nil, StandardMockTestScheme())
	if report.Percentage != 0 {
		t.Errorf("Expected 0%% for empty test, got %.2f", report.Percentage)
	}

	if got := Percentage(10, 0); got != 0 {
		t.Errorf("Expected division-by-zero guard to return 0, got %.2f", got)
	}
}

func TestSectionBreakdownSums(t *testing.T) {
	sections := []models.Section{
		{Title: "A", Questions: makeQuestions(0, 1)},
		{Title: "B", Questions: makeQuestions(2, 3)},
	}
	answers := [][]*int{
		{intPtr(0), intPtr(1)}, // both correct: +8
		{intPtr(0), nil},       // one wrong, one unanswered: -1
	}

	report := EvaluateMockTest(sections, answers, StandardMockTestScheme())

	if len(report.Sections) != 2 {
		t.Fatalf("Expected 2 section reports, got %d", len(report.Sections))
	}
	if report.Sections[0].Score != 8 {
		t.Errorf("Expected section A score 8, got %.2f", report.Sections[0].Score)
	}
	if report.Sections[1].Score != -1 {
		t.Errorf("Expected section B score -1, got %.2f", report.Sections[1].Score)
	}
	if report.Score != 7 {
		t.Errorf("Expected overall score 7, got %.2f", report.Score)
	}

	sum := 0.0
	for _, s := range report.Sections {
		sum += s.Score
	}
	if math.Abs(sum-report.Score) > 1e-9 {
		t.Errorf("Section scores %.2f do not sum to overall %.2f", sum, report.Score)
	}
}
