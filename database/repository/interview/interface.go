// File: database/repository/interview/interface.go
package interviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"placehub/database"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateSlot is returned when a write collides with the unique
// (selectDate, selectTime) index. The index is the authority on slot
// uniqueness; concurrent bookings that pass the read-side check still fail
// here.
var ErrDuplicateSlot = errors.New("interview slot already booked")

// InterviewRepository defines data access for booked interview records.
// GetByID, Update and Delete return mongo.ErrNoDocuments for unknown ids;
// the FindByDayTime variants return (nil, nil) on a miss.
type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	FindByDayTime(ctx context.Context, day time.Time, timeOfDay string) (*models.Interview, error)
	FindByDayTimeExcluding(ctx context.Context, day time.Time, timeOfDay, excludeID string) (*models.Interview, error)
	ListByDay(ctx context.Context, day time.Time) ([]models.Interview, error)
	ListByDayRange(ctx context.Context, start, end time.Time) ([]models.Interview, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Interview, error)
	List(ctx context.Context, page, limit int) ([]models.Interview, int64, error)
	Update(ctx context.Context, iv *models.Interview) error
	Delete(ctx context.Context, id string) error
}

type mongoInterviewRepo struct {
	coll *mongo.Collection
}

// NewMongoInterviewRepo constructs a new MongoDB InterviewRepository.
func NewMongoInterviewRepo() InterviewRepository {
	repo := &mongoInterviewRepo{
		coll: database.DB().Collection("interviews"),
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
