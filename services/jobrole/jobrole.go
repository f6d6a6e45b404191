// File: services/jobrole/jobrole.go
package jobrole

import (
	"context"
	"errors"
	"strings"

	jobroleRepo "placehub/database/repository/jobrole"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrRoleExists is returned when creating a role whose name is taken.
	ErrRoleExists = errors.New("a job role with this name already exists")
	// ErrRoleNotFound is returned when no role matches the id or name.
	ErrRoleNotFound = errors.New("job role not found")
	// ErrTemplateExists is returned when a role already has a template.
	ErrTemplateExists = errors.New("a template already exists for this job role")
	// ErrTemplateNotFound is returned when no template matches the role or id.
	ErrTemplateNotFound = errors.New("job role template not found")
)

var templateFieldTypes = map[string]bool{
	"text":    true,
	"number":  true,
	"select":  true,
	"boolean": true,
}

// JobRoleService manages roles and the per-role progress templates.
type JobRoleService interface {
	CreateRole(ctx context.Context, name string) (*models.JobRole, error)
	ListRoles(ctx context.Context) ([]models.JobRole, error)
	DeleteRole(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, roleID string, fields []models.TemplateField) (*models.JobRoleTemplate, error)
	ListTemplates(ctx context.Context) ([]models.JobRoleTemplate, error)
	GetTemplateForRole(ctx context.Context, roleID string) (*models.JobRoleTemplate, error)
	UpdateTemplate(ctx context.Context, id string, fields []models.TemplateField) (*models.JobRoleTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// DefaultJobRoleService is the production implementation of JobRoleService.
type DefaultJobRoleService struct {
	Repo   jobroleRepo.JobRoleRepository
	Logger *zap.Logger
}

// NewDefaultJobRoleService constructs a DefaultJobRoleService.
func NewDefaultJobRoleService(repo jobroleRepo.JobRoleRepository, logger *zap.Logger) *DefaultJobRoleService {
	return &DefaultJobRoleService{Repo: repo, Logger: logger}
}

// CreateRole adds a role, rejecting names that already exist in any casing.
func (s *DefaultJobRoleService) CreateRole(ctx context.Context, name string) (*models.JobRole, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("role name is required")
	}

	existing, err := s.Repo.FindRoleByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleExists
	}

	role := &models.JobRole{Name: name}
	if err := s.Repo.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	s.Logger.Info("job role created", zap.String("roleID", role.ID), zap.String("name", role.Name))
	return role, nil
}

// ListRoles returns all roles sorted by name.
func (s *DefaultJobRoleService) ListRoles(ctx context.Context) ([]models.JobRole, error) {
	roles, err := s.Repo.GetRoles(ctx)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []models.JobRole{}
	}
	return roles, nil
}

// DeleteRole removes a role and its template, if one exists.
func (s *DefaultJobRoleService) DeleteRole(ctx context.Context, id string) error {
	if tpl, err := s.Repo.FindTemplateByRole(ctx, id); err == nil && tpl != nil {
		if err := s.Repo.DeleteTemplate(ctx, tpl.ID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}
	err := s.Repo.DeleteRole(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrRoleNotFound
	}
	return err
}

func validateFields(fields []models.TemplateField) error {
	if len(fields) == 0 {
		return errors.New("at least one template field is required")
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return errors.New("template field names must not be empty")
		}
		if seen[strings.ToLower(name)] {
			return errors.New("duplicate template field names are not allowed")
		}
		seen[strings.ToLower(name)] = true
		if !templateFieldTypes[f.Type] {
			return errors.New("template field type must be one of text, number, select, boolean")
		}
	}
	return nil
}

// CreateTemplate attaches a progress template to a role. At most one template
// exists per role.
func (s *DefaultJobRoleService) CreateTemplate(ctx context.Context, roleID string, fields []models.TemplateField) (*models.JobRoleTemplate, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindTemplateByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTemplateExists
	}

	tpl := &models.JobRoleTemplate{JobRoleID: roleID, Fields: fields}
	if err := s.Repo.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// ListTemplates returns all templates.
func (s *DefaultJobRoleService) ListTemplates(ctx context.Context) ([]models.JobRoleTemplate, error) {
	templates, err := s.Repo.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []models.JobRoleTemplate{}
	}
	return templates, nil
}

// GetTemplateForRole fetches the template attached to a role.
func (s *DefaultJobRoleService) GetTemplateForRole(ctx context.Context, roleID string) (*models.JobRoleTemplate, error) {
	tpl, err := s.Repo.FindTemplateByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

// UpdateTemplate replaces a template's field list.
func (s *DefaultJobRoleService) UpdateTemplate(ctx context.Context, id string, fields []models.TemplateField) (*models.JobRoleTemplate, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	templates, err := s.Repo.GetTemplates(ctx)
	if err != nil {
		return nil, err
	}
	var tpl *models.JobRoleTemplate
	for i := range templates {
		if templates[i].ID == id {
			tpl = &templates[i]
			break
		}
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}

	tpl.Fields = fields
	if err := s.Repo.UpdateTemplate(ctx, tpl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

// DeleteTemplate removes a template.
func (s *DefaultJobRoleService) DeleteTemplate(ctx context.Context, id string) error {
	err := s.Repo.DeleteTemplate(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrTemplateNotFound
	}
	return err
}
