package models

import "time"

// DailyTopic is one day's study topic for a subject. Completing it drives
// the user's streak.
type DailyTopic struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Subject     string    `bson:"subject" json:"subject"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Date        time.Time `bson:"date" json:"date"`
	QuizID      string    `bson:"quiz_id,omitempty" json:"quiz_id,omitempty"`
	AIGenerated bool      `bson:"ai_generated" json:"ai_generated"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
