package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InterviewRepository struct {
	Col *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) *InterviewRepository {
	return &InterviewRepository{Col: db.Collection("interview_sets")}
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*models.InterviewSet, error) {
	var set models.InterviewSet
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&set)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *InterviewRepository) FindByRole(ctx context.Context, role string) ([]models.InterviewSet, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sets []models.InterviewSet
	for cur.Next(ctx) {
		var s models.InterviewSet
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func (r *InterviewRepository) Create(ctx context.Context, set *models.InterviewSet) error {
	if set.ID == "" {
		set.ID = primitive.NewObjectID().Hex()
	}
	set.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, set)
	return err
}
