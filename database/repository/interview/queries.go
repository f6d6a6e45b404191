// File: database/repository/interview/queries.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"placehub/models"
)

func (r *mongoInterviewRepo) FindByDayTime(ctx context.Context, day time.Time, timeOfDay string) (*models.Interview, error) {
	return r.findOne(ctx, bson.M{"selectDate": day, "selectTime": timeOfDay})
}

func (r *mongoInterviewRepo) FindByDayTimeExcluding(ctx context.Context, day time.Time, timeOfDay, excludeID string) (*models.Interview, error) {
	return r.findOne(ctx, bson.M{
		"selectDate": day,
		"selectTime": timeOfDay,
		"id":         bson.M{"$ne": excludeID},
	})
}

func (r *mongoInterviewRepo) findOne(ctx context.Context, filter bson.M) (*models.Interview, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var iv models.Interview
	err := r.coll.FindOne(ctx, filter).Decode(&iv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query interview: %w", err)
	}
	return &iv, nil
}

func (r *mongoInterviewRepo) ListByDay(ctx context.Context, day time.Time) ([]models.Interview, error) {
	return r.find(ctx, bson.M{"selectDate": day}, options.Find().SetSort(bson.D{{Key: "selectTime", Value: 1}}))
}

func (r *mongoInterviewRepo) ListByDayRange(ctx context.Context, start, end time.Time) ([]models.Interview, error) {
	filter := bson.M{"selectDate": bson.M{"$gte": start, "$lte": end}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "selectDate", Value: 1}, {Key: "selectTime", Value: 1}}))
}

func (r *mongoInterviewRepo) ListByOwner(ctx context.Context, userID string) ([]models.Interview, error) {
	return r.find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *mongoInterviewRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Interview, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("failed to decode interviews: %w", err)
	}
	return interviews, nil
}

// List returns one page of interviews, newest first, along with the total count.
func (r *mongoInterviewRepo) List(ctx context.Context, page, limit int) ([]models.Interview, int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count interviews: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer cursor.Close(ctx)

	var interviews []models.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, 0, fmt.Errorf("failed to decode interviews: %w", err)
	}
	return interviews, total, nil
}
