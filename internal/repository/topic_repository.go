package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TopicRepository struct {
	Col *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) *TopicRepository {
	return &TopicRepository{Col: db.Collection("daily_topics")}
}

func (r *TopicRepository) FindByID(ctx context.Context, id string) (*models.DailyTopic, error) {
	var topic models.DailyTopic
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&topic)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// FindByDate returns the topics published for one calendar day.
func (r *TopicRepository) FindByDate(ctx context.Context, day time.Time) ([]models.DailyTopic, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	cur, err := r.Col.Find(ctx, bson.M{"date": bson.M{"$gte": start, "$lt": end}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var topics []models.DailyTopic
	for cur.Next(ctx) {
		var t models.DailyTopic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func (r *TopicRepository) FindBySubject(ctx context.Context, subject string) ([]models.DailyTopic, error) {
	cur, err := r.Col.Find(ctx, bson.M{"subject": subject})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var topics []models.DailyTopic
	for cur.Next(ctx) {
		var t models.DailyTopic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func (r *TopicRepository) Create(ctx context.Context, topic *models.DailyTopic) error {
	if topic.ID == "" {
		topic.ID = primitive.NewObjectID().Hex()
	}
	topic.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, topic)
	return err
}
