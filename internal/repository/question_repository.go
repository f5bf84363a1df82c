package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionRepository stores the standalone question bank that ephemeral
// mock tests are assembled from.
type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *QuestionRepository) FindByTopic(ctx context.Context, topic, difficulty string) ([]models.Question, error) {
	filter := bson.M{}
	if topic != "" {
		filter["topic"] = topic
	}
	if difficulty != "" {
		filter["difficulty"] = difficulty
	}
	return r.findMany(ctx, filter)
}

func (r *QuestionRepository) findMany(ctx context.Context, filter bson.M) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	question.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) CreateMany(ctx context.Context, questions []models.Question) error {
	docs := make([]interface{}, 0, len(questions))
	now := time.Now()
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = primitive.NewObjectID().Hex()
		}
		questions[i].CreatedAt = now
		docs = append(docs, questions[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
