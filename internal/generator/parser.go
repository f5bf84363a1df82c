package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"prep-service/internal/models"
)

// stripCodeFence removes a surrounding markdown code fence if the model
// wrapped its JSON in one despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// rawQuestion is the wire shape produced by the question prompts. The
// correct answer may arrive as the option text or as an index; both are
// converted to the canonical option index.
type rawQuestion struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
}

func (rq *rawQuestion) correctIndex() (int, error) {
	var idx int
	if err := json.Unmarshal(rq.CorrectAnswer, &idx); err == nil {
		if idx < 0 || idx >= len(rq.Options) {
			return 0, fmt.Errorf("correct answer index %d out of range", idx)
		}
		return idx, nil
	}

	var text string
	if err := json.Unmarshal(rq.CorrectAnswer, &text); err != nil {
		return 0, fmt.Errorf("correct answer is neither an index nor a string")
	}
	for i, opt := range rq.Options {
		if opt == text {
			return i, nil
		}
	}
	return 0, fmt.Errorf("correct answer %q does not match any option", text)
}

// ParseQuestions decodes generated question JSON into canonical questions.
// Any structurally invalid question fails the whole batch: partial content
// is never returned.
func ParseQuestions(raw, topic, difficulty string) ([]models.Question, error) {
	var rawQuestions []rawQuestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &rawQuestions); err != nil {
		return nil, fmt.Errorf("unparseable question content: %w", err)
	}
	if len(rawQuestions) == 0 {
		return nil, fmt.Errorf("generator returned no questions")
	}

	questions := make([]models.Question, 0, len(rawQuestions))
	for i, rq := range rawQuestions {
		if rq.Question == "" {
			return nil, fmt.Errorf("question %d has no prompt", i)
		}
		if len(rq.Options) < 2 {
			return nil, fmt.Errorf("question %d has %d options, need at least 2", i, len(rq.Options))
		}
		correct, err := rq.correctIndex()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}

		questions = append(questions, models.Question{
			Prompt:        rq.Question,
			Options:       rq.Options,
			CorrectOption: correct,
			Explanation:   rq.Explanation,
			Topic:         topic,
			Difficulty:    difficulty,
			AIGenerated:   true,
		})
	}
	return questions, nil
}

// ParseFlashcards decodes generated flashcard JSON.
func ParseFlashcards(raw string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &cards); err != nil {
		return nil, fmt.Errorf("unparseable flashcard content: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("generator returned no flashcards")
	}
	for i, card := range cards {
		if card.Front == "" || card.Back == "" {
			return nil, fmt.Errorf("flashcard %d is missing front or back", i)
		}
	}
	return cards, nil
}

type rawInterviewQuestion struct {
	Question    string `json:"question"`
	ModelAnswer string `json:"modelAnswer"`
	Difficulty  string `json:"difficulty"`
}

// ParseInterviewQuestions decodes generated interview questions.
func ParseInterviewQuestions(raw string) ([]models.InterviewQuestion, error) {
	var rawQuestions []rawInterviewQuestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &rawQuestions); err != nil {
		return nil, fmt.Errorf("unparseable interview content: %w", err)
	}
	if len(rawQuestions) == 0 {
		return nil, fmt.Errorf("generator returned no interview questions")
	}

	questions := make([]models.InterviewQuestion, 0, len(rawQuestions))
	for i, rq := range rawQuestions {
		if rq.Question == "" {
			return nil, fmt.Errorf("interview question %d has no prompt", i)
		}
		questions = append(questions, models.InterviewQuestion{
			Question:    rq.Question,
			ModelAnswer: rq.ModelAnswer,
			Difficulty:  rq.Difficulty,
		})
	}
	return questions, nil
}

type rawResumeReview struct {
	Feedback string  `json:"feedback"`
	Score    float64 `json:"score"`
}

// ParseResumeReview decodes generated resume feedback. The score is clamped
// to the 0-100 range.
func ParseResumeReview(raw string) (string, float64, error) {
	var review rawResumeReview
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &review); err != nil {
		return "", 0, fmt.Errorf("unparseable review content: %w", err)
	}
	if review.Feedback == "" {
		return "", 0, fmt.Errorf("review has no feedback")
	}
	if review.Score < 0 {
		review.Score = 0
	}
	if review.Score > 100 {
		review.Score = 100
	}
	return review.Feedback, review.Score, nil
}
