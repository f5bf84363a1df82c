package repository

import (
	"context"
	"log"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomTestIDPrefix marks tests assembled at generation time from the
// question bank. They live in the same collection but carry a TTL.
const CustomTestIDPrefix = "custom-"

// ephemeralTestTTL is how long an assembled test stays available for
// scoring before the TTL monitor removes it.
const ephemeralTestTTL = 24 * time.Hour

type MockTestRepository struct {
	Col *mongo.Collection
}

func NewMockTestRepository(db *mongo.Database) *MockTestRepository {
	repo := &MockTestRepository{Col: db.Collection("mock_tests")}
	repo.ensureIndexes()
	return repo
}

func (r *MockTestRepository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"expires_at": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		log.Printf("Failed to create mock test TTL index: %v", err)
	}
}

func (r *MockTestRepository) FindAll(ctx context.Context, difficulty string) ([]models.MockTest, error) {
	filter := bson.M{"ephemeral": bson.M{"$ne": true}}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tests []models.MockTest
	for cur.Next(ctx) {
		var t models.MockTest
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, nil
}

func (r *MockTestRepository) FindByID(ctx context.Context, id string) (*models.MockTest, error) {
	var test models.MockTest
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&test)
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *MockTestRepository) Create(ctx context.Context, test *models.MockTest) error {
	if test.ID == "" {
		test.ID = primitive.NewObjectID().Hex()
	}
	test.CreatedAt = time.Now()
	test.UpdatedAt = test.CreatedAt
	_, err := r.Col.InsertOne(ctx, test)
	return err
}

// CreateEphemeral persists an assembled custom test with a TTL so the
// server can score the eventual submission itself instead of trusting a
// client-computed summary.
func (r *MockTestRepository) CreateEphemeral(ctx context.Context, test *models.MockTest) error {
	test.ID = CustomTestIDPrefix + primitive.NewObjectID().Hex()
	test.Ephemeral = true
	expires := time.Now().Add(ephemeralTestTTL)
	test.ExpiresAt = &expires
	test.CreatedAt = time.Now()
	test.UpdatedAt = test.CreatedAt
	_, err := r.Col.InsertOne(ctx, test)
	return err
}

func (r *MockTestRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *MockTestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// RecordAttempt updates the running average and attempt count atomically,
// same as QuizRepository.RecordAttempt.
func (r *MockTestRepository) RecordAttempt(ctx context.Context, id string, score float64) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, runningAveragePipeline(score))
	return err
}
