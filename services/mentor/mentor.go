// File: services/mentor/mentor.go
package mentor

import (
	"context"
	"errors"

	mentorRepo "placehub/database/repository/mentor"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrMentorNotFound is returned when no mentor matches the given id.
var ErrMentorNotFound = errors.New("mentor not found")

// MentorService defines mentor profile management.
type MentorService interface {
	CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error)
	GetMentor(ctx context.Context, id string) (*models.Mentor, error)
	ListActiveMentors(ctx context.Context) ([]models.Mentor, error)
	UpdateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error)
	SetMentorActive(ctx context.Context, id string, active bool) (*models.Mentor, error)
	DeleteMentor(ctx context.Context, id string) error
}

// DefaultMentorService is the production implementation of MentorService.
type DefaultMentorService struct {
	Repo   mentorRepo.MentorRepository
	Logger *zap.Logger
}

// NewDefaultMentorService constructs a DefaultMentorService.
func NewDefaultMentorService(repo mentorRepo.MentorRepository, logger *zap.Logger) *DefaultMentorService {
	return &DefaultMentorService{Repo: repo, Logger: logger}
}

// CreateMentor validates and stores a new mentor profile. New mentors start
// active so they appear on the public listing immediately.
func (s *DefaultMentorService) CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error) {
	if m.Field == "" || m.Course == "" {
		return nil, errors.New("field and course are required")
	}
	if m.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		m.PasswordHash = string(hash)
		m.Password = ""
	}
	m.IsActive = true

	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.Logger.Info("mentor created", zap.String("mentorID", m.ID), zap.String("field", m.Field))
	return m, nil
}

// GetMentor fetches one mentor by id.
func (s *DefaultMentorService) GetMentor(ctx context.Context, id string) (*models.Mentor, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListActiveMentors returns the mentors shown on the public listing.
func (s *DefaultMentorService) ListActiveMentors(ctx context.Context) ([]models.Mentor, error) {
	mentors, err := s.Repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return mentors, nil
}

// UpdateMentor replaces a mentor profile, preserving the stored password hash
// unless a new password is supplied.
func (s *DefaultMentorService) UpdateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error) {
	current, err := s.GetMentor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.CreatedAt = current.CreatedAt
	if m.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		m.PasswordHash = string(hash)
		m.Password = ""
	} else {
		m.PasswordHash = current.PasswordHash
	}

	if err := s.Repo.Update(ctx, m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}
	return m, nil
}

// SetMentorActive toggles whether a mentor appears on the public listing.
func (s *DefaultMentorService) SetMentorActive(ctx context.Context, id string, active bool) (*models.Mentor, error) {
	m, err := s.Repo.SetActive(ctx, id, active)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMentorNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMentor removes a mentor profile.
func (s *DefaultMentorService) DeleteMentor(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrMentorNotFound
	}
	return err
}
