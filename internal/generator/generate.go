package generator

import (
	"context"
	"fmt"

	"prep-service/internal/models"
)

// GenerateQuestions produces canonical multiple-choice questions for a
// topic. Generation and parsing failures surface as errors; no partial
// content is ever returned.
func GenerateQuestions(ctx context.Context, c *Client, topic, difficulty string, count int) ([]models.Question, error) {
	raw, err := c.Complete(ctx, questionSystemPrompt, quizPrompt(topic, difficulty, count))
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}
	return ParseQuestions(raw, topic, difficulty)
}

// GenerateSectionQuestions produces questions for one mock-test section.
func GenerateSectionQuestions(ctx context.Context, c *Client, title, topic, difficulty string, count int) ([]models.Question, error) {
	raw, err := c.Complete(ctx, questionSystemPrompt, sectionPrompt(title, topic, difficulty, count))
	if err != nil {
		return nil, fmt.Errorf("section generation failed: %w", err)
	}
	return ParseQuestions(raw, topic, difficulty)
}

// GenerateFlashcards produces flashcards for a topic.
func GenerateFlashcards(ctx context.Context, c *Client, topic string, count int) ([]models.Flashcard, error) {
	raw, err := c.Complete(ctx, flashcardSystemPrompt, flashcardPrompt(topic, count))
	if err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}
	return ParseFlashcards(raw)
}

// GenerateInterviewQuestions produces interview questions for a role.
func GenerateInterviewQuestions(ctx context.Context, c *Client, role, topic, difficulty string, count int) ([]models.InterviewQuestion, error) {
	raw, err := c.Complete(ctx, interviewSystemPrompt, interviewPrompt(role, topic, difficulty, count))
	if err != nil {
		return nil, fmt.Errorf("interview generation failed: %w", err)
	}
	return ParseInterviewQuestions(raw)
}

// GenerateResumeReview produces feedback and a 0-100 score for a resume.
func GenerateResumeReview(ctx context.Context, c *Client, resumeJSON string) (string, float64, error) {
	raw, err := c.Complete(ctx, resumeSystemPrompt, resumeReviewPrompt(resumeJSON))
	if err != nil {
		return "", 0, fmt.Errorf("resume review failed: %w", err)
	}
	return ParseResumeReview(raw)
}
