package service

import (
	"context"
	"log"

	"prep-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "prep:leaderboard"

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	UserID string  `json:"user_id"`
	Score  float64 `json:"score"`
}

// LeaderboardService ranks users by cumulative score. Redis keeps a sorted
// set for fast reads when configured; the user progress collection remains
// the source of truth and serves as the fallback.
type LeaderboardService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewLeaderboardService(userRepo *repository.UserRepository, redisClient *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		UserRepo: userRepo,
		Redis:    redisClient,
	}
}

// Credit adds points to the user's cached leaderboard score. Contributions
// are clamped at zero so a negative mock-test raw score can never reduce a
// ranking. Cache failures are logged, not propagated: the Mongo document
// was already updated by the caller.
func (s *LeaderboardService) Credit(ctx context.Context, userID string, points float64) {
	if s.Redis == nil {
		return
	}
	if points < 0 {
		points = 0
	}
	if err := s.Redis.ZIncrBy(ctx, leaderboardKey, points, userID).Err(); err != nil {
		log.Printf("Failed to update leaderboard cache for user %s: %v", userID, err)
	}
}

// Top returns the highest-scoring users.
func (s *LeaderboardService) Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.Redis != nil {
		members, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
		if err == nil && len(members) > 0 {
			entries := make([]LeaderboardEntry, 0, len(members))
			for i, m := range members {
				userID, _ := m.Member.(string)
				entries = append(entries, LeaderboardEntry{
					Rank:   i + 1,
					UserID: userID,
					Score:  m.Score,
				})
			}
			return entries, nil
		}
		if err != nil {
			log.Printf("Leaderboard cache read failed, falling back to MongoDB: %v", err)
		}
	}

	users, err := s.UserRepo.FindTopByScore(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Score:  u.TotalScore,
		})
	}
	return entries, nil
}
