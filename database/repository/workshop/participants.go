// File: database/repository/workshop/participants.go
package workshopRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"placehub/models"
)

func (r *mongoWorkshopRepo) AddParticipant(ctx context.Context, workshopID string, p models.Participant) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"participants": p},
		"$inc":  bson.M{"totalRegistered": 1},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": workshopID}, update)
	if err != nil {
		return fmt.Errorf("failed to add participant to workshop %s: %w", workshopID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoWorkshopRepo) UpdateParticipant(ctx context.Context, workshopID string, p models.Participant) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": workshopID, "participants.id": p.ID}
	update := bson.M{"$set": bson.M{"participants.$": p, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update participant %s in workshop %s: %w", p.ID, workshopID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoWorkshopRepo) RemoveParticipant(ctx context.Context, workshopID, participantID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"participants": bson.M{"id": participantID}},
		"$inc":  bson.M{"totalRegistered": -1},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": workshopID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove participant %s from workshop %s: %w", participantID, workshopID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
