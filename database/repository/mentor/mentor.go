// File: database/repository/mentor/mentor.go
package mentorRepo

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

// MentorRepository defines data access for mentor profiles.
type MentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetActive(ctx context.Context) ([]models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	SetActive(ctx context.Context, id string, active bool) (*models.Mentor, error)
	Delete(ctx context.Context, id string) error
}

type mongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo constructs a new MongoDB MentorRepository.
func NewMongoMentorRepo() MentorRepository {
	return &mongoMentorRepo{coll: database.DB().Collection("mentors")}
}

func (r *mongoMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if mentor.ID == "" {
		mentor.ID = uuid.New().String()
	}
	now := time.Now()
	mentor.CreatedAt = now
	mentor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, mentor); err != nil {
		return fmt.Errorf("failed to create mentor: %w", err)
	}
	return nil
}

func (r *mongoMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentor models.Mentor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mentor)
	if err == mongo.ErrNoDocuments {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor with id %s: %w", id, err)
	}
	return &mentor, nil
}

func (r *mongoMentorRepo) GetActive(ctx context.Context) ([]models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mentors: %w", err)
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}
	return mentors, nil
}

func (r *mongoMentorRepo) Update(ctx context.Context, mentor *models.Mentor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	mentor.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": mentor.ID}, bson.M{"$set": mentor})
	if err != nil {
		return fmt.Errorf("failed to update mentor with id %s: %w", mentor.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMentorRepo) SetActive(ctx context.Context, id string, active bool) (*models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts)

	var mentor models.Mentor
	if err := res.Decode(&mentor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update mentor status for id %s: %w", id, err)
	}
	return &mentor, nil
}

func (r *mongoMentorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mentor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
