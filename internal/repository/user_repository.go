package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository stores per-user progress documents keyed by the auth
// layer's user ID.
type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("user_progress")}
}

// FindOrCreate returns the user's progress document, creating an empty one
// on first contact.
func (r *UserRepository) FindOrCreate(ctx context.Context, userID string) (*models.UserProgress, error) {
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"total_score":        0.0,
			"current_streak":     0,
			"longest_streak":     0,
			"quiz_attempts":      []models.QuizAttempt{},
			"mock_test_attempts": []models.MockTestAttempt{},
			"completed_topics":   []models.TopicCompletion{},
			"updated_at":         time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var progress models.UserProgress
	if err := r.Col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// AppendQuizAttempt records the attempt and credits the leaderboard score
// in one atomic update.
func (r *UserRepository) AppendQuizAttempt(ctx context.Context, userID string, attempt models.QuizAttempt, scoreDelta float64) error {
	update := bson.M{
		"$push": bson.M{"quiz_attempts": attempt},
		"$inc":  bson.M{"total_score": scoreDelta},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

// AppendMockTestAttempt is the mock-test counterpart of AppendQuizAttempt.
func (r *UserRepository) AppendMockTestAttempt(ctx context.Context, userID string, attempt models.MockTestAttempt, scoreDelta float64) error {
	update := bson.M{
		"$push": bson.M{"mock_test_attempts": attempt},
		"$inc":  bson.M{"total_score": scoreDelta},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

// RecordTopicCompletion appends the completion entry and sets the new
// streak counters, but only if no completion for the same topic and day is
// already present. Returns false when the completion was a duplicate, which
// makes re-marking a topic idempotent.
func (r *UserRepository) RecordTopicCompletion(ctx context.Context, userID string, completion models.TopicCompletion, current, longest int, lastActive time.Time) (bool, error) {
	filter := bson.M{
		"_id": userID,
		"completed_topics": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"topic_id": completion.TopicID,
			"day":      completion.Day,
		}}},
	}
	update := bson.M{
		"$push": bson.M{"completed_topics": completion},
		"$set": bson.M{
			"current_streak":   current,
			"longest_streak":   longest,
			"last_active_date": lastActive,
			"updated_at":       time.Now(),
		},
	}

	res, err := r.Col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// FindTopByScore lists the highest-scoring users, the MongoDB fallback for
// the leaderboard when Redis is not configured.
func (r *UserRepository) FindTopByScore(ctx context.Context, limit int64) ([]models.UserProgress, error) {
	opts := options.Find().
		SetSort(bson.M{"total_score": -1}).
		SetLimit(limit)

	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.UserProgress
	for cur.Next(ctx) {
		var u models.UserProgress
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
