package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindAll(ctx context.Context, topic, difficulty string) ([]models.Quiz, error) {
	filter := bson.M{}
	if topic != "" {
		filter["topic"] = topic
	}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = primitive.NewObjectID().Hex()
	}
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = quiz.CreatedAt
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// RecordAttempt folds one submission score into the quiz's running average
// and attempt count in a single atomic update.
func (r *QuizRepository) RecordAttempt(ctx context.Context, id string, score float64) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, runningAveragePipeline(score))
	return err
}
