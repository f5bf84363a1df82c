package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"prep-service/internal/generator"
	"prep-service/internal/models"
	"prep-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ResumeService struct {
	Repo      *repository.ResumeRepository
	Generator *generator.Client
}

func NewResumeService(repo *repository.ResumeRepository, gen *generator.Client) *ResumeService {
	return &ResumeService{Repo: repo, Generator: gen}
}

func (s *ResumeService) GetResume(ctx context.Context, id string) (*models.Resume, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ResumeService) ListResumes(ctx context.Context, userID string) ([]models.Resume, error) {
	return s.Repo.FindByUser(ctx, userID)
}

func (s *ResumeService) CreateResume(ctx context.Context, resume *models.Resume) error {
	if resume.Headline == "" {
		return fmt.Errorf("headline is required")
	}
	return s.Repo.Create(ctx, resume)
}

func (s *ResumeService) UpdateResume(ctx context.Context, id, userID string, update bson.M) error {
	resume, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if resume.UserID != userID {
		return fmt.Errorf("resume %s does not belong to user", id)
	}
	return s.Repo.Update(ctx, id, update)
}

func (s *ResumeService) DeleteResume(ctx context.Context, id, userID string) error {
	resume, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if resume.UserID != userID {
		return fmt.Errorf("resume %s does not belong to user", id)
	}
	return s.Repo.Delete(ctx, id)
}

// ReviewResume asks the model for feedback on the stored resume, attaches
// the review to the document and returns it.
func (s *ResumeService) ReviewResume(ctx context.Context, id, userID string) (*models.ResumeReview, error) {
	resume, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume.UserID != userID {
		return nil, fmt.Errorf("resume %s does not belong to user", id)
	}

	// Reviews are stripped before sending so earlier feedback cannot
	// steer the new one.
	snapshot := *resume
	snapshot.Reviews = nil
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}

	feedback, score, err := generator.GenerateResumeReview(ctx, s.Generator, string(payload))
	if err != nil {
		return nil, err
	}

	review := models.ResumeReview{
		Feedback:  feedback,
		Score:     score,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AppendReview(ctx, id, review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return &review, nil
}
