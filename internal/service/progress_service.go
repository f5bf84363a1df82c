package service

import (
	"context"

	"prep-service/internal/models"
	"prep-service/internal/repository"
)

// ProgressService exposes the per-user progress document: cumulative score,
// streak counters and attempt history.
type ProgressService struct {
	UserRepo *repository.UserRepository
}

func NewProgressService(userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{UserRepo: userRepo}
}

// GetProgress returns the user's progress, creating an empty document on
// first contact so new users see zeroed counters instead of a 404.
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	return s.UserRepo.FindOrCreate(ctx, userID)
}
