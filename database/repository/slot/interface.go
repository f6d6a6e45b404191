// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"placehub/database"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository defines data access for published available-slot records.
// Replace and Delete return mongo.ErrNoDocuments when no record exists for
// the day; FindByDate returns (nil, nil) on a miss so callers can distinguish
// "no record" from a storage fault.
type SlotRepository interface {
	Create(ctx context.Context, slot *models.AvailableSlot) error
	FindByDate(ctx context.Context, day time.Time) (*models.AvailableSlot, error)
	GetAll(ctx context.Context) ([]models.AvailableSlot, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error)
	ReplaceTimes(ctx context.Context, day time.Time, times []string) (*models.AvailableSlot, error)
	Delete(ctx context.Context, day time.Time) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{
		coll: database.DB().Collection("available_slots"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
