// File: database/repository/workshop/crud.go
package workshopRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"placehub/models"
)

func (r *mongoWorkshopRepo) Create(ctx context.Context, w *models.Workshop) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.WorkshopLink == "" {
		slug := strings.ReplaceAll(strings.ToLower(w.WorkshopName), " ", "-")
		w.WorkshopLink = fmt.Sprintf("/workshops/%s-%s", slug, w.ID[len(w.ID)-6:])
	}
	if w.Participants == nil {
		w.Participants = []models.Participant{}
	}
	w.TotalRegistered = len(w.Participants)
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to create workshop: %w", err)
	}
	return nil
}

func (r *mongoWorkshopRepo) GetByID(ctx context.Context, id string) (*models.Workshop, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoWorkshopRepo) FindByLink(ctx context.Context, link string) (*models.Workshop, error) {
	return r.findOne(ctx, bson.M{"workshopLink": link})
}

func (r *mongoWorkshopRepo) findOne(ctx context.Context, filter bson.M) (*models.Workshop, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var w models.Workshop
	err := r.coll.FindOne(ctx, filter).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshop: %w", err)
	}
	return &w, nil
}

func (r *mongoWorkshopRepo) GetAll(ctx context.Context) ([]models.Workshop, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workshops: %w", err)
	}
	defer cursor.Close(ctx)

	var workshops []models.Workshop
	if err := cursor.All(ctx, &workshops); err != nil {
		return nil, fmt.Errorf("failed to decode workshops: %w", err)
	}
	return workshops, nil
}

func (r *mongoWorkshopRepo) Update(ctx context.Context, w *models.Workshop) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	w.TotalRegistered = len(w.Participants)
	w.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": w.ID}, bson.M{"$set": w})
	if err != nil {
		return fmt.Errorf("failed to update workshop with id %s: %w", w.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoWorkshopRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete workshop with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
