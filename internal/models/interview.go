package models

import "time"

type InterviewQuestion struct {
	Question    string `bson:"question" json:"question"`
	ModelAnswer string `bson:"model_answer" json:"model_answer"`
	Difficulty  string `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// InterviewSet is a generated set of interview questions for a role/topic.
type InterviewSet struct {
	ID          string              `bson:"_id,omitempty" json:"id"`
	Role        string              `bson:"role" json:"role"`
	Topic       string              `bson:"topic,omitempty" json:"topic,omitempty"`
	Difficulty  string              `bson:"difficulty" json:"difficulty"`
	Questions   []InterviewQuestion `bson:"questions" json:"questions"`
	AIGenerated bool                `bson:"ai_generated" json:"ai_generated"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}
