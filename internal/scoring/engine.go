package scoring

import (
	"prep-service/internal/models"
)

// Engine evaluates submissions against question sets. It is a pure
// computation: no persistence, no I/O, and malformed answer data never
// produces an error (it degrades to "incorrect").
type Engine struct {
	scheme MarkingScheme
}

// NewEngine creates a scoring engine with the provided marking scheme.
func NewEngine(scheme MarkingScheme) *Engine {
	return &Engine{scheme: scheme}
}

// evaluateQuestion scores a single question independently. A nil answer
// contributes zero and counts neither as correct nor as attempted.
func (e *Engine) evaluateQuestion(q *models.Question, answer *int) QuestionResult {
	result := QuestionResult{
		Prompt:        q.Prompt,
		Options:       q.Options,
		UserAnswer:    answer,
		CorrectAnswer: q.CorrectOption,
		Explanation:   q.Explanation,
	}

	if answer == nil {
		return result
	}

	result.Answered = true
	if *answer == q.CorrectOption {
		result.IsCorrect = true
		result.Awarded = q.MarksValue(e.scheme.CorrectMarks)
	} else {
		result.Awarded = -q.PenaltyValue(e.scheme.NegativeMarks)
	}
	return result
}

// EvaluateSection scores one ordered question list against a positionally
// aligned answer slice. Answers beyond the end of the slice are treated as
// unanswered.
func (e *Engine) EvaluateSection(title string, questions []models.Question, answers []*int) SectionReport {
	report := SectionReport{
		Title:     title,
		Questions: make([]QuestionResult, 0, len(questions)),
	}

	for i := range questions {
		q := &questions[i]
		var answer *int
		if i < len(answers) {
			answer = answers[i]
		}

		qr := e.evaluateQuestion(q, answer)
		report.Score += qr.Awarded
		report.MaxMarks += q.MarksValue(e.scheme.CorrectMarks)
		if qr.Answered {
			report.Attempted++
		}
		if qr.IsCorrect {
			report.Correct++
		}
		report.Questions = append(report.Questions, qr)
	}

	return report
}

// Evaluate scores a sectioned submission. Missing trailing answer slices
// mean the whole section was left unanswered.
func (e *Engine) Evaluate(sections []models.Section, answers [][]*int) *Report {
	report := &Report{}

	for i, section := range sections {
		var sectionAnswers []*int
		if i < len(answers) {
			sectionAnswers = answers[i]
		}

		sr := e.EvaluateSection(section.Title, section.Questions, sectionAnswers)
		report.Score += sr.Score
		report.MaxMarks += sr.MaxMarks
		report.CorrectAnswers += sr.Correct
		report.Attempted += sr.Attempted
		report.TotalQuestions += len(section.Questions)
		report.Sections = append(report.Sections, sr)
	}

	report.Percentage = Percentage(report.Score, report.MaxMarks)
	return report
}

// EvaluateQuiz scores a flat question list with quiz marking. Quizzes have
// no marking scheme of their own, so the reported score IS the percentage
// of questions answered correctly; only mock-test reports carry a raw
// marked total.
func EvaluateQuiz(questions []models.Question, answers []*int) *Report {
	engine := NewEngine(QuizScheme())
	sr := engine.EvaluateSection("", questions, answers)
	pct := Percentage(sr.Score, sr.MaxMarks)

	return &Report{
		Score:          pct,
		MaxMarks:       sr.MaxMarks,
		Percentage:     pct,
		CorrectAnswers: sr.Correct,
		TotalQuestions: len(questions),
		Attempted:      sr.Attempted,
		Sections:       []SectionReport{sr},
	}
}

// EvaluateMockTest scores a sectioned test with the standard mock-test
// marking scheme.
func EvaluateMockTest(sections []models.Section, answers [][]*int, scheme MarkingScheme) *Report {
	return NewEngine(scheme).Evaluate(sections, answers)
}

// Percentage converts a raw score into a reported percentage: zero when
// there is nothing to score, never negative no matter how negative the raw
// score is.
func Percentage(score, maxMarks float64) float64 {
	if maxMarks <= 0 {
		return 0
	}
	pct := score / maxMarks * 100
	if pct < 0 {
		return 0
	}
	return pct
}
