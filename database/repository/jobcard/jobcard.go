// File: database/repository/jobcard/jobcard.go
package jobcardRepo

import (
	"context"
	"fmt"
	"time"

	"placehub/database"
	"placehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// JobCardRepository defines data access for job cards, keyed by student id.
type JobCardRepository interface {
	Create(ctx context.Context, card *models.JobCard) error
	FindByStudent(ctx context.Context, studentID string) (*models.JobCard, error)
	GetAll(ctx context.Context) ([]models.JobCard, error)
	UpdateByStudent(ctx context.Context, card *models.JobCard) error
	DeleteByStudent(ctx context.Context, studentID string) error
}

type mongoJobCardRepo struct {
	coll *mongo.Collection
}

// NewMongoJobCardRepo constructs a new MongoDB JobCardRepository.
func NewMongoJobCardRepo() JobCardRepository {
	return &mongoJobCardRepo{coll: database.DB().Collection("job_cards")}
}

func (r *mongoJobCardRepo) Create(ctx context.Context, card *models.JobCard) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	now := time.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, card); err != nil {
		return fmt.Errorf("failed to create job card: %w", err)
	}
	return nil
}

func (r *mongoJobCardRepo) FindByStudent(ctx context.Context, studentID string) (*models.JobCard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var card models.JobCard
	err := r.coll.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job card for student %s: %w", studentID, err)
	}
	return &card, nil
}

func (r *mongoJobCardRepo) GetAll(ctx context.Context) ([]models.JobCard, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve job cards: %w", err)
	}
	defer cursor.Close(ctx)

	var cards []models.JobCard
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode job cards: %w", err)
	}
	return cards, nil
}

func (r *mongoJobCardRepo) UpdateByStudent(ctx context.Context, card *models.JobCard) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	card.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"studentId": card.StudentID}, bson.M{"$set": card})
	if err != nil {
		return fmt.Errorf("failed to update job card for student %s: %w", card.StudentID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoJobCardRepo) DeleteByStudent(ctx context.Context, studentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return fmt.Errorf("failed to delete job card for student %s: %w", studentID, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
