package models

import "time"

type Section struct {
	Title      string     `bson:"title" json:"title"`
	Questions  []Question `bson:"questions" json:"questions"`
	TotalMarks float64    `bson:"total_marks" json:"total_marks"`
}

type MockTest struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Sections        []Section `bson:"sections" json:"sections"`
	TotalMarks      float64   `bson:"total_marks" json:"total_marks"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Difficulty      string    `bson:"difficulty" json:"difficulty"`
	AIGenerated     bool      `bson:"ai_generated" json:"ai_generated"`

	// Ephemeral tests are assembled from the question bank at generation
	// time and kept only long enough for the submission to be scored
	// server-side. ExpiresAt backs a TTL index.
	Ephemeral bool       `bson:"ephemeral,omitempty" json:"ephemeral,omitempty"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	Attempts     int     `bson:"attempts" json:"attempts"`
	AverageScore float64 `bson:"average_score" json:"average_score"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// QuestionCount returns the number of questions across all sections.
func (t *MockTest) QuestionCount() int {
	count := 0
	for _, s := range t.Sections {
		count += len(s.Questions)
	}
	return count
}
