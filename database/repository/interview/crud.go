// File: database/repository/interview/crud.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"placehub/models"
)

func (r *mongoInterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if iv.ID == "" {
		iv.ID = uuid.New().String()
	}
	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, iv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *mongoInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var iv models.Interview
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&iv)
	if err == mongo.ErrNoDocuments {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interview with id %s: %w", id, err)
	}
	return &iv, nil
}

func (r *mongoInterviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	iv.UpdatedAt = time.Now()
	filter := bson.M{"id": iv.ID}
	update := bson.M{"$set": iv}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to update interview with id %s: %w", iv.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoInterviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete interview with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
