package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResumeRepository struct {
	Col *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{Col: db.Collection("resumes")}
}

func (r *ResumeRepository) FindByID(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&resume)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepository) FindByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var resumes []models.Resume
	for cur.Next(ctx) {
		var res models.Resume
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, nil
}

func (r *ResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = primitive.NewObjectID().Hex()
	}
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = resume.CreatedAt
	_, err := r.Col.InsertOne(ctx, resume)
	return err
}

func (r *ResumeRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ResumeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// AppendReview attaches one AI review to the resume.
func (r *ResumeRepository) AppendReview(ctx context.Context, id string, review models.ResumeReview) error {
	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
