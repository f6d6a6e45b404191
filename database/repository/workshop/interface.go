// File: database/repository/workshop/interface.go
package workshopRepo

import (
	"context"
	"time"

	"placehub/database"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WorkshopRepository defines data access for workshops and their embedded
// participants. Lookups and updates on unknown ids return mongo.ErrNoDocuments.
type WorkshopRepository interface {
	Create(ctx context.Context, w *models.Workshop) error
	GetByID(ctx context.Context, id string) (*models.Workshop, error)
	FindByLink(ctx context.Context, link string) (*models.Workshop, error)
	GetAll(ctx context.Context) ([]models.Workshop, error)
	Update(ctx context.Context, w *models.Workshop) error
	Delete(ctx context.Context, id string) error

	AddParticipant(ctx context.Context, workshopID string, p models.Participant) error
	UpdateParticipant(ctx context.Context, workshopID string, p models.Participant) error
	RemoveParticipant(ctx context.Context, workshopID, participantID string) error
}

type mongoWorkshopRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkshopRepo constructs a new MongoDB WorkshopRepository.
func NewMongoWorkshopRepo() WorkshopRepository {
	return &mongoWorkshopRepo{coll: database.DB().Collection("workshops")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
