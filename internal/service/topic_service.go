package service

import (
	"context"
	"fmt"
	"time"

	"prep-service/internal/models"
	"prep-service/internal/repository"
	"prep-service/internal/streak"
)

// StreakResult holds the streak counters after a completion.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// CompletionResult is what the completion endpoint reports back: the
// counters nested under a streak key.
type CompletionResult struct {
	Streak StreakResult `json:"streak"`
}

type TopicService struct {
	Repo     *repository.TopicRepository
	UserRepo *repository.UserRepository
}

func NewTopicService(repo *repository.TopicRepository, userRepo *repository.UserRepository) *TopicService {
	return &TopicService{Repo: repo, UserRepo: userRepo}
}

func (s *TopicService) GetTopic(ctx context.Context, id string) (*models.DailyTopic, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *TopicService) TodayTopics(ctx context.Context) ([]models.DailyTopic, error) {
	return s.Repo.FindByDate(ctx, time.Now())
}

func (s *TopicService) TopicsBySubject(ctx context.Context, subject string) ([]models.DailyTopic, error) {
	return s.Repo.FindBySubject(ctx, subject)
}

func (s *TopicService) CreateTopic(ctx context.Context, topic *models.DailyTopic) error {
	if topic.Date.IsZero() {
		topic.Date = time.Now()
	}
	return s.Repo.Create(ctx, topic)
}

// CompleteTopic marks a topic as done for the user and advances the streak.
// Re-marking the same topic on the same day is a no-op: neither the streak
// nor the completion list changes.
func (s *TopicService) CompleteTopic(ctx context.Context, topicID, userID string, now time.Time) (*CompletionResult, error) {
	if _, err := s.Repo.FindByID(ctx, topicID); err != nil {
		return nil, err
	}

	progress, err := s.UserRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user progress: %w", err)
	}

	state := streak.Advance(streak.State{
		Current:    progress.CurrentStreak,
		Longest:    progress.LongestStreak,
		LastActive: progress.LastActiveDate,
	}, now)

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	completion := models.TopicCompletion{
		TopicID:     topicID,
		Day:         day,
		CompletedAt: now,
	}

	applied, err := s.UserRepo.RecordTopicCompletion(ctx, userID, completion, state.Current, state.Longest, *state.LastActive)
	if err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}
	if !applied {
		// Already completed today; report the stored counters untouched.
		return &CompletionResult{Streak: StreakResult{Current: progress.CurrentStreak, Longest: progress.LongestStreak}}, nil
	}

	return &CompletionResult{Streak: StreakResult{Current: state.Current, Longest: state.Longest}}, nil
}
