package models

import "time"

// QuizAttempt is an immutable record of one scored quiz submission. It is
// embedded in the user's progress document and never mutated afterward.
type QuizAttempt struct {
	QuizID         string    `bson:"quiz_id" json:"quiz_id"`
	Title          string    `bson:"title,omitempty" json:"title,omitempty"`
	Score          float64   `bson:"score" json:"score"`
	CorrectAnswers int       `bson:"correct_answers" json:"correct_answers"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	AttemptedAt    time.Time `bson:"attempted_at" json:"attempted_at"`
}

// MockTestAttempt records one scored mock-test submission. Score is the raw
// marked total and may be negative; only Percentage is floored at zero.
type MockTestAttempt struct {
	TestID           string    `bson:"test_id" json:"test_id"`
	Title            string    `bson:"title,omitempty" json:"title,omitempty"`
	Score            float64   `bson:"score" json:"score"`
	Percentage       float64   `bson:"percentage" json:"percentage"`
	CorrectAnswers   int       `bson:"correct_answers" json:"correct_answers"`
	TotalQuestions   int       `bson:"total_questions" json:"total_questions"`
	TimeTakenSeconds int       `bson:"time_taken_seconds,omitempty" json:"time_taken_seconds,omitempty"`
	AttemptedAt      time.Time `bson:"attempted_at" json:"attempted_at"`
}
