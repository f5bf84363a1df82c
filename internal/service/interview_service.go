package service

import (
	"context"
	"fmt"

	"prep-service/internal/generator"
	"prep-service/internal/models"
	"prep-service/internal/repository"
)

type InterviewService struct {
	Repo      *repository.InterviewRepository
	Generator *generator.Client
}

func NewInterviewService(repo *repository.InterviewRepository, gen *generator.Client) *InterviewService {
	return &InterviewService{Repo: repo, Generator: gen}
}

func (s *InterviewService) GetSet(ctx context.Context, id string) (*models.InterviewSet, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *InterviewService) ListSets(ctx context.Context, role string) ([]models.InterviewSet, error) {
	return s.Repo.FindByRole(ctx, role)
}

// GenerateSet builds a set of AI-authored interview questions with model
// answers for a role.
func (s *InterviewService) GenerateSet(ctx context.Context, role, topic, difficulty string, count int) (*models.InterviewSet, error) {
	questions, err := generator.GenerateInterviewQuestions(ctx, s.Generator, role, topic, difficulty, count)
	if err != nil {
		return nil, err
	}

	set := &models.InterviewSet{
		Role:        role,
		Topic:       topic,
		Difficulty:  difficulty,
		Questions:   questions,
		AIGenerated: true,
	}
	if err := s.Repo.Create(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to save interview set: %w", err)
	}
	return set, nil
}
