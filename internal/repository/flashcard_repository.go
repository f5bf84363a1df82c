package repository

import (
	"context"
	"fmt"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FlashcardRepository struct {
	Decks   *mongo.Collection
	Reviews *mongo.Collection
}

func NewFlashcardRepository(db *mongo.Database) *FlashcardRepository {
	return &FlashcardRepository{
		Decks:   db.Collection("flashcard_decks"),
		Reviews: db.Collection("card_reviews"),
	}
}

func (r *FlashcardRepository) FindDeckByID(ctx context.Context, id string) (*models.FlashcardDeck, error) {
	var deck models.FlashcardDeck
	err := r.Decks.FindOne(ctx, bson.M{"_id": id}).Decode(&deck)
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *FlashcardRepository) FindDecks(ctx context.Context, topic string) ([]models.FlashcardDeck, error) {
	filter := bson.M{}
	if topic != "" {
		filter["topic"] = topic
	}

	cur, err := r.Decks.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var decks []models.FlashcardDeck
	for cur.Next(ctx) {
		var d models.FlashcardDeck
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}

func (r *FlashcardRepository) CreateDeck(ctx context.Context, deck *models.FlashcardDeck) error {
	if deck.ID == "" {
		deck.ID = primitive.NewObjectID().Hex()
	}
	deck.CreatedAt = time.Now()
	deck.UpdatedAt = deck.CreatedAt
	_, err := r.Decks.InsertOne(ctx, deck)
	return err
}

func (r *FlashcardRepository) DeleteDeck(ctx context.Context, id string) error {
	_, err := r.Decks.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// reviewID keys one user's scheduling state for one card.
func reviewID(userID, deckID string, cardIndex int) string {
	return fmt.Sprintf("%s:%s:%d", userID, deckID, cardIndex)
}

func (r *FlashcardRepository) FindReview(ctx context.Context, userID, deckID string, cardIndex int) (*models.CardReview, error) {
	var review models.CardReview
	err := r.Reviews.FindOne(ctx, bson.M{"_id": reviewID(userID, deckID, cardIndex)}).Decode(&review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpsertReview replaces the card's scheduling state, creating it on the
// first review.
func (r *FlashcardRepository) UpsertReview(ctx context.Context, review *models.CardReview) error {
	review.ID = reviewID(review.UserID, review.DeckID, review.CardIndex)
	opts := options.Replace().SetUpsert(true)
	_, err := r.Reviews.ReplaceOne(ctx, bson.M{"_id": review.ID}, review, opts)
	return err
}

// FindDueReviews lists the user's card states due at or before now.
func (r *FlashcardRepository) FindDueReviews(ctx context.Context, userID string, now time.Time) ([]models.CardReview, error) {
	cur, err := r.Reviews.Find(ctx, bson.M{
		"user_id": userID,
		"due_at":  bson.M{"$lte": now},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var reviews []models.CardReview
	for cur.Next(ctx) {
		var rev models.CardReview
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
