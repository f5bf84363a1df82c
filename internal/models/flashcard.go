package models

import "time"

type Flashcard struct {
	Front string `bson:"front" json:"front"`
	Back  string `bson:"back" json:"back"`
	Hint  string `bson:"hint,omitempty" json:"hint,omitempty"`
}

type FlashcardDeck struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Topic       string      `bson:"topic" json:"topic"`
	Cards       []Flashcard `bson:"cards" json:"cards"`
	AIGenerated bool        `bson:"ai_generated" json:"ai_generated"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// CardReview holds the spaced-repetition state of one card for one user.
// One document per user/deck/card.
type CardReview struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	DeckID       string    `bson:"deck_id" json:"deck_id"`
	CardIndex    int       `bson:"card_index" json:"card_index"`
	Repetitions  int       `bson:"repetitions" json:"repetitions"`
	EaseFactor   float64   `bson:"ease_factor" json:"ease_factor"`
	IntervalDays int       `bson:"interval_days" json:"interval_days"`
	DueAt        time.Time `bson:"due_at" json:"due_at"`
	LastQuality  int       `bson:"last_quality" json:"last_quality"`
	ReviewedAt   time.Time `bson:"reviewed_at" json:"reviewed_at"`
}
