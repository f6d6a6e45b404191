// File: database/repository/feedback/feedback.go
package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"placehub/database"
	"placehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepository defines data access for mentor feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error)
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo constructs a new MongoDB FeedbackRepository.
func NewMongoFeedbackRepo() FeedbackRepository {
	return &mongoFeedbackRepo{coll: database.DB().Collection("feedback")}
}

func (r *mongoFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	fb.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *mongoFeedbackRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback for student %s: %w", studentID, err)
	}
	defer cursor.Close(ctx)

	var feedback []models.Feedback
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedback, nil
}
