package service

import (
	"context"
	"fmt"
	"time"

	"prep-service/internal/generator"
	"prep-service/internal/models"
	"prep-service/internal/repository"
	"prep-service/internal/scoring"
)

type QuizService struct {
	Repo        *repository.QuizRepository
	UserRepo    *repository.UserRepository
	Leaderboard *LeaderboardService
	Generator   *generator.Client
}

func NewQuizService(repo *repository.QuizRepository, userRepo *repository.UserRepository, leaderboard *LeaderboardService, gen *generator.Client) *QuizService {
	return &QuizService{
		Repo:        repo,
		UserRepo:    userRepo,
		Leaderboard: leaderboard,
		Generator:   gen,
	}
}

func (s *QuizService) ListQuizzes(ctx context.Context, topic, difficulty string) ([]models.Quiz, error) {
	return s.Repo.FindAll(ctx, topic, difficulty)
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	for i := range quiz.Questions {
		if !quiz.Questions[i].HasValidCorrectOption() {
			return fmt.Errorf("question %d has an invalid correct option", i)
		}
	}
	return s.Repo.Create(ctx, quiz)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// GenerateQuiz builds a quiz with AI-authored questions and persists it.
// Nothing is stored when generation or parsing fails.
func (s *QuizService) GenerateQuiz(ctx context.Context, topic, difficulty string, count int) (*models.Quiz, error) {
	questions, err := generator.GenerateQuestions(ctx, s.Generator, topic, difficulty, count)
	if err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		Title:       fmt.Sprintf("%s practice quiz", topic),
		Topic:       topic,
		Difficulty:  difficulty,
		Questions:   questions,
		AIGenerated: true,
	}
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to save generated quiz: %w", err)
	}
	return quiz, nil
}

// SubmitQuiz scores a submission and applies the side effects: the attempt
// is appended to the user's history, the user's cumulative score grows by
// the full percentage, and the quiz's running average is folded forward.
// When a side effect fails the computed report is still returned alongside
// the error so the client does not have to resubmit for a recompute.
func (s *QuizService) SubmitQuiz(ctx context.Context, quizID, userID string, answers []*int) (*scoring.Report, error) {
	quiz, err := s.Repo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	report := scoring.EvaluateQuiz(quiz.Questions, answers)

	attempt := models.QuizAttempt{
		QuizID:         quizID,
		Title:          quiz.Title,
		Score:          report.Percentage,
		CorrectAnswers: report.CorrectAnswers,
		TotalQuestions: report.TotalQuestions,
		AttemptedAt:    time.Now(),
	}

	if _, err := s.UserRepo.FindOrCreate(ctx, userID); err != nil {
		return report, fmt.Errorf("failed to load user progress: %w", err)
	}
	if err := s.UserRepo.AppendQuizAttempt(ctx, userID, attempt, report.Percentage); err != nil {
		return report, fmt.Errorf("failed to record attempt: %w", err)
	}
	if err := s.Repo.RecordAttempt(ctx, quizID, report.Percentage); err != nil {
		return report, fmt.Errorf("failed to update quiz statistics: %w", err)
	}

	s.Leaderboard.Credit(ctx, userID, report.Percentage)

	return report, nil
}
