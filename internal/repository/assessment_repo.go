package repository

import (
	"context"
	"time"

	"endoguard/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssessmentRepo handles MongoDB operations for completed assessments
type AssessmentRepo interface {
	Save(ctx context.Context, record *model.AssessmentRecord) (string, error)
	GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]*model.AssessmentRecord, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Save(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepo) ListByUserID(ctx context.Context, userID string) ([]*model.AssessmentRecord, error) {
	opts := options.Find().SetSort(bson.M{"completedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AssessmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
