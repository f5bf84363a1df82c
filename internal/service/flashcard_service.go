package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prep-service/internal/generator"
	"prep-service/internal/models"
	"prep-service/internal/repository"
	"prep-service/internal/srs"

	"go.mongodb.org/mongo-driver/mongo"
)

type FlashcardService struct {
	Repo      *repository.FlashcardRepository
	Generator *generator.Client
}

func NewFlashcardService(repo *repository.FlashcardRepository, gen *generator.Client) *FlashcardService {
	return &FlashcardService{Repo: repo, Generator: gen}
}

func (s *FlashcardService) GetDeck(ctx context.Context, id string) (*models.FlashcardDeck, error) {
	return s.Repo.FindDeckByID(ctx, id)
}

func (s *FlashcardService) ListDecks(ctx context.Context, topic string) ([]models.FlashcardDeck, error) {
	return s.Repo.FindDecks(ctx, topic)
}

func (s *FlashcardService) CreateDeck(ctx context.Context, deck *models.FlashcardDeck) error {
	if len(deck.Cards) == 0 {
		return fmt.Errorf("deck has no cards")
	}
	return s.Repo.CreateDeck(ctx, deck)
}

func (s *FlashcardService) DeleteDeck(ctx context.Context, id string) error {
	return s.Repo.DeleteDeck(ctx, id)
}

// GenerateDeck builds a deck of AI-authored flashcards.
func (s *FlashcardService) GenerateDeck(ctx context.Context, topic string, count int) (*models.FlashcardDeck, error) {
	cards, err := generator.GenerateFlashcards(ctx, s.Generator, topic, count)
	if err != nil {
		return nil, err
	}

	deck := &models.FlashcardDeck{
		Title:       fmt.Sprintf("%s flashcards", topic),
		Topic:       topic,
		Cards:       cards,
		AIGenerated: true,
	}
	if err := s.Repo.CreateDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to save generated deck: %w", err)
	}
	return deck, nil
}

// ReviewCard applies one recall event to the user's scheduling state for a
// card and returns the updated state with its next due date.
func (s *FlashcardService) ReviewCard(ctx context.Context, userID, deckID string, cardIndex, quality int, now time.Time) (*models.CardReview, error) {
	deck, err := s.Repo.FindDeckByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if cardIndex < 0 || cardIndex >= len(deck.Cards) {
		return nil, fmt.Errorf("card index %d out of range for deck of %d cards", cardIndex, len(deck.Cards))
	}

	state := srs.NewCardState(now)
	existing, err := s.Repo.FindReview(ctx, userID, deckID, cardIndex)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		state = srs.CardState{
			Repetitions:  existing.Repetitions,
			EaseFactor:   existing.EaseFactor,
			IntervalDays: existing.IntervalDays,
			DueAt:        existing.DueAt,
		}
	}

	next := srs.Review(state, quality, now)

	review := &models.CardReview{
		UserID:       userID,
		DeckID:       deckID,
		CardIndex:    cardIndex,
		Repetitions:  next.Repetitions,
		EaseFactor:   next.EaseFactor,
		IntervalDays: next.IntervalDays,
		DueAt:        next.DueAt,
		LastQuality:  quality,
		ReviewedAt:   now,
	}
	if err := s.Repo.UpsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save review state: %w", err)
	}
	return review, nil
}

// DueReviews lists the user's cards that are due for review.
func (s *FlashcardService) DueReviews(ctx context.Context, userID string, now time.Time) ([]models.CardReview, error) {
	return s.Repo.FindDueReviews(ctx, userID, now)
}
