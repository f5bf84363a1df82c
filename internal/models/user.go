package models

import "time"

// TopicCompletion is a timestamped record of a daily-topic completion.
// Day holds the calendar day (start of day) and makes the completion
// idempotent per user/topic/day.
type TopicCompletion struct {
	TopicID     string    `bson:"topic_id" json:"topic_id"`
	Day         time.Time `bson:"day" json:"day"`
	CompletedAt time.Time `bson:"completed_at" json:"completed_at"`
}

// UserProgress is the per-user progress document: cumulative leaderboard
// score, streak counters and attempt history. The document ID is the user
// ID issued by the auth layer.
type UserProgress struct {
	ID               string            `bson:"_id" json:"user_id"`
	TotalScore       float64           `bson:"total_score" json:"total_score"`
	CurrentStreak    int               `bson:"current_streak" json:"current_streak"`
	LongestStreak    int               `bson:"longest_streak" json:"longest_streak"`
	LastActiveDate   *time.Time        `bson:"last_active_date,omitempty" json:"last_active_date,omitempty"`
	QuizAttempts     []QuizAttempt     `bson:"quiz_attempts" json:"quiz_attempts"`
	MockTestAttempts []MockTestAttempt `bson:"mock_test_attempts" json:"mock_test_attempts"`
	CompletedTopics  []TopicCompletion `bson:"completed_topics" json:"completed_topics"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updated_at"`
}
