// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"placehub/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.AvailableSlot) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create available slot: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) FindByDate(ctx context.Context, day time.Time) (*models.AvailableSlot, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var slot models.AvailableSlot
	err := r.coll.FindOne(ctx, bson.M{"date": day}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available slot for %s: %w", day.Format("2006-01-02"), err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetAll(ctx context.Context) ([]models.AvailableSlot, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve available slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailableSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode available slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slots in range: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailableSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots in range: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) ReplaceTimes(ctx context.Context, day time.Time, times []string) (*models.AvailableSlot, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": day}
	update := bson.M{"$set": bson.M{"timeSlots": times, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.AvailableSlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace time slots for %s: %w", day.Format("2006-01-02"), err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) Delete(ctx context.Context, day time.Time) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"date": day})
	if err != nil {
		return fmt.Errorf("failed to delete available slot for %s: %w", day.Format("2006-01-02"), err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
