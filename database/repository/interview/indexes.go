// File: database/repository/interview/indexes.go
package interviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the necessary indexes on the interviews collection.
func (r *mongoInterviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one interview per (selectDate, selectTime). Concurrent
		// bookings race on the application-level check; this index settles it.
		{
			Keys:    bson.D{{Key: "selectDate", Value: 1}, {Key: "selectTime", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_date_time"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("owner_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create interview indexes: %w", err)
	}
	return nil
}
