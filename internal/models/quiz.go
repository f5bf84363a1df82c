package models

import "time"

type Quiz struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Topic       string     `bson:"topic" json:"topic"`
	Difficulty  string     `bson:"difficulty" json:"difficulty"`
	Questions   []Question `bson:"questions" json:"questions"`
	AIGenerated bool       `bson:"ai_generated" json:"ai_generated"`

	// Running aggregate statistics, updated atomically on each submission.
	Attempts     int     `bson:"attempts" json:"attempts"`
	AverageScore float64 `bson:"average_score" json:"average_score"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
