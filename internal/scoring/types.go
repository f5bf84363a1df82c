package scoring

// MarkingScheme holds the default marks awarded and deducted per question.
// A question's own marks/negative-marks override these when set.
type MarkingScheme struct {
	CorrectMarks  float64 `json:"correct_marks"`
	NegativeMarks float64 `json:"negative_marks"`
}

// StandardMockTestScheme is the platform-wide mock-test marking: +4 for a
// correct answer, -1 for an answered-but-wrong one.
func StandardMockTestScheme() MarkingScheme {
	return MarkingScheme{CorrectMarks: 4, NegativeMarks: 1}
}

// QuizScheme scores plain quizzes: one point per correct answer and no
// negative marking, so the percentage equals the fraction answered right.
func QuizScheme() MarkingScheme {
	return MarkingScheme{CorrectMarks: 1, NegativeMarks: 0}
}

// QuestionResult is the per-question line of a score report.
type QuestionResult struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	UserAnswer    *int     `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
	Answered      bool     `json:"answered"`
	IsCorrect     bool     `json:"is_correct"`
	Awarded       float64  `json:"awarded"`
	Explanation   string   `json:"explanation,omitempty"`
}

// SectionReport aggregates one section of a mock test.
type SectionReport struct {
	Title     string           `json:"section_title"`
	Score     float64          `json:"score"`
	MaxMarks  float64          `json:"max_marks"`
	Correct   int              `json:"correct"`
	Attempted int              `json:"attempted"`
	Questions []QuestionResult `json:"questions"`
}

// Report is a full score report. For mock tests Score is the raw marked
// total and may be negative; for quizzes Score equals Percentage. The
// percentage is always floored at zero.
type Report struct {
	Score          float64         `json:"score"`
	MaxMarks       float64         `json:"max_marks"`
	Percentage     float64         `json:"percentage"`
	CorrectAnswers int             `json:"correct_answers"`
	TotalQuestions int             `json:"total_questions"`
	Attempted      int             `json:"attempted"`
	Sections       []SectionReport `json:"sections,omitempty"`
}
