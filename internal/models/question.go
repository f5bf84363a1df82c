package models

import "time"

// Question is the canonical question shape shared by quizzes, mock tests
// and the standalone question bank. The correct answer is always stored as
// an option index; string answers coming from generators or imports are
// converted at ingestion.
type Question struct {
	ID            string   `bson:"_id,omitempty" json:"id,omitempty"`
	Prompt        string   `bson:"prompt" json:"prompt"`
	Options       []string `bson:"options" json:"options"`
	CorrectOption int      `bson:"correct_option" json:"correct_option"`
	Explanation   string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Topic         string   `bson:"topic,omitempty" json:"topic,omitempty"`
	Difficulty    string   `bson:"difficulty,omitempty" json:"difficulty,omitempty"`

	// Optional per-question marking. Zero means "use the scheme default".
	Marks         float64 `bson:"marks,omitempty" json:"marks,omitempty"`
	NegativeMarks float64 `bson:"negative_marks,omitempty" json:"negative_marks,omitempty"`

	AIGenerated bool      `bson:"ai_generated,omitempty" json:"ai_generated,omitempty"`
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// MarksValue resolves the positive marks for this question: the question's
// own value wins when set, otherwise the scheme default applies.
func (q *Question) MarksValue(defaultMarks float64) float64 {
	if q.Marks > 0 {
		return q.Marks
	}
	return defaultMarks
}

// PenaltyValue resolves the negative marks the same way.
func (q *Question) PenaltyValue(defaultPenalty float64) float64 {
	if q.NegativeMarks > 0 {
		return q.NegativeMarks
	}
	return defaultPenalty
}

// HasValidCorrectOption reports whether the correct option index points at
// an existing option.
func (q *Question) HasValidCorrectOption() bool {
	return q.CorrectOption >= 0 && q.CorrectOption < len(q.Options)
}
