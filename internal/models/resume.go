package models

import "time"

type ExperienceEntry struct {
	Company     string `bson:"company" json:"company"`
	Role        string `bson:"role" json:"role"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type EducationEntry struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Year        string `bson:"year,omitempty" json:"year,omitempty"`
}

// ResumeReview is AI-produced feedback on a resume.
type ResumeReview struct {
	Feedback  string    `bson:"feedback" json:"feedback"`
	Score     float64   `bson:"score" json:"score"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Resume struct {
	ID         string            `bson:"_id,omitempty" json:"id"`
	UserID     string            `bson:"user_id" json:"user_id"`
	Headline   string            `bson:"headline" json:"headline"`
	Summary    string            `bson:"summary,omitempty" json:"summary,omitempty"`
	Skills     []string          `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience []ExperienceEntry `bson:"experience,omitempty" json:"experience,omitempty"`
	Education  []EducationEntry  `bson:"education,omitempty" json:"education,omitempty"`
	Reviews    []ResumeReview    `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updated_at"`
}
