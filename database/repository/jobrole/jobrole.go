// File: database/repository/jobrole/jobrole.go
package jobroleRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"placehub/database"
	"placehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobRoleRepository defines data access for job roles and their templates.
type JobRoleRepository interface {
	CreateRole(ctx context.Context, role *models.JobRole) error
	GetRoles(ctx context.Context) ([]models.JobRole, error)
	FindRoleByName(ctx context.Context, name string) (*models.JobRole, error)
	DeleteRole(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, tpl *models.JobRoleTemplate) error
	GetTemplates(ctx context.Context) ([]models.JobRoleTemplate, error)
	FindTemplateByRole(ctx context.Context, roleID string) (*models.JobRoleTemplate, error)
	UpdateTemplate(ctx context.Context, tpl *models.JobRoleTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
}

type mongoJobRoleRepo struct {
	roles     *mongo.Collection
	templates *mongo.Collection
}

// NewMongoJobRoleRepo constructs a new MongoDB JobRoleRepository.
func NewMongoJobRoleRepo() JobRoleRepository {
	db := database.DB()
	return &mongoJobRoleRepo{
		roles:     db.Collection("job_roles"),
		templates: db.Collection("job_role_templates"),
	}
}

func (r *mongoJobRoleRepo) CreateRole(ctx context.Context, role *models.JobRole) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now

	if _, err := r.roles.InsertOne(ctx, role); err != nil {
		return fmt.Errorf("failed to create job role: %w", err)
	}
	return nil
}

func (r *mongoJobRoleRepo) GetRoles(ctx context.Context) ([]models.JobRole, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.roles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve job roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []models.JobRole
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("failed to decode job roles: %w", err)
	}
	return roles, nil
}

// regexEscape quotes user input before it reaches a $regex filter.
func regexEscape(s string) string {
	return regexp.QuoteMeta(s)
}

// FindRoleByName matches a role by name, case-insensitively, or returns (nil, nil).
func (r *mongoJobRoleRepo) FindRoleByName(ctx context.Context, name string) (*models.JobRole, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": "^" + regexEscape(name) + "$", "$options": "i"}}
	var role models.JobRole
	err := r.roles.FindOne(ctx, filter).Decode(&role)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job role %q: %w", name, err)
	}
	return &role, nil
}

func (r *mongoJobRoleRepo) DeleteRole(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.roles.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job role with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoJobRoleRepo) CreateTemplate(ctx context.Context, tpl *models.JobRoleTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	now := time.Now()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	if _, err := r.templates.InsertOne(ctx, tpl); err != nil {
		return fmt.Errorf("failed to create job role template: %w", err)
	}
	return nil
}

func (r *mongoJobRoleRepo) GetTemplates(ctx context.Context) ([]models.JobRoleTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.templates.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve job role templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.JobRoleTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode job role templates: %w", err)
	}
	return templates, nil
}

func (r *mongoJobRoleRepo) FindTemplateByRole(ctx context.Context, roleID string) (*models.JobRoleTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tpl models.JobRoleTemplate
	err := r.templates.FindOne(ctx, bson.M{"jobRoleId": roleID}).Decode(&tpl)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template for role %s: %w", roleID, err)
	}
	return &tpl, nil
}

func (r *mongoJobRoleRepo) UpdateTemplate(ctx context.Context, tpl *models.JobRoleTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tpl.UpdatedAt = time.Now()
	result, err := r.templates.UpdateOne(ctx, bson.M{"id": tpl.ID}, bson.M{"$set": tpl})
	if err != nil {
		return fmt.Errorf("failed to update template with id %s: %w", tpl.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoJobRoleRepo) DeleteTemplate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.templates.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete template with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
