// File: services/jobcard/jobcard.go
package jobcard

import (
	"context"
	"errors"

	jobcardRepo "placehub/database/repository/jobcard"
	userRepo "placehub/database/repository/user"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrCardNotFound is returned when a student has no job card.
	ErrCardNotFound = errors.New("job card not found")
	// ErrCardExists is returned when creating a second card for a student.
	ErrCardExists = errors.New("a job card already exists for this student")
)

// JobCardService manages per-student placement progress cards.
type JobCardService interface {
	CreateCard(ctx context.Context, card *models.JobCard) (*models.JobCard, error)
	GetCardByStudent(ctx context.Context, studentID string) (*models.JobCardView, error)
	ListCards(ctx context.Context) ([]models.JobCardView, error)
	UpdateCardByStudent(ctx context.Context, card *models.JobCard) (*models.JobCard, error)
	DeleteCardByStudent(ctx context.Context, studentID string) error
}

// DefaultJobCardService is the production implementation of JobCardService.
type DefaultJobCardService struct {
	Cards  jobcardRepo.JobCardRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// NewDefaultJobCardService constructs a DefaultJobCardService.
func NewDefaultJobCardService(cards jobcardRepo.JobCardRepository, users userRepo.UserRepository, logger *zap.Logger) *DefaultJobCardService {
	return &DefaultJobCardService{Cards: cards, Users: users, Logger: logger}
}

// CreateCard stores a new card for a student. One card per student.
func (s *DefaultJobCardService) CreateCard(ctx context.Context, card *models.JobCard) (*models.JobCard, error) {
	if card.StudentID == "" {
		return nil, errors.New("student id is required")
	}

	existing, err := s.Cards.FindByStudent(ctx, card.StudentID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCardExists
	}

	if err := s.Cards.Create(ctx, card); err != nil {
		return nil, err
	}
	s.Logger.Info("job card created", zap.String("studentID", card.StudentID))
	return card, nil
}

// view joins a card with the owning student's display fields. A missing or
// deleted account leaves those fields blank rather than failing the lookup.
func (s *DefaultJobCardService) view(ctx context.Context, card models.JobCard) models.JobCardView {
	v := models.JobCardView{JobCard: card}
	user, err := s.Users.GetByID(ctx, card.StudentID)
	if err != nil || user == nil {
		return v
	}
	v.Name = user.Name
	v.Photo = user.Profile.Image
	v.Subtitle = user.Profile.Position
	if v.Subtitle == "" {
		v.Subtitle = user.Profile.Education
	}
	return v
}

// GetCardByStudent fetches a student's card joined with their profile.
func (s *DefaultJobCardService) GetCardByStudent(ctx context.Context, studentID string) (*models.JobCardView, error) {
	card, err := s.Cards.FindByStudent(ctx, studentID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	v := s.view(ctx, *card)
	return &v, nil
}

// ListCards returns every card joined with the owning student's profile.
func (s *DefaultJobCardService) ListCards(ctx context.Context) ([]models.JobCardView, error) {
	cards, err := s.Cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.JobCardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, s.view(ctx, card))
	}
	return views, nil
}

// UpdateCardByStudent replaces a student's card fields.
func (s *DefaultJobCardService) UpdateCardByStudent(ctx context.Context, card *models.JobCard) (*models.JobCard, error) {
	if card.StudentID == "" {
		return nil, errors.New("student id is required")
	}
	if err := s.Cards.UpdateByStudent(ctx, card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// DeleteCardByStudent removes a student's card.
func (s *DefaultJobCardService) DeleteCardByStudent(ctx context.Context, studentID string) error {
	err := s.Cards.DeleteByStudent(ctx, studentID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCardNotFound
	}
	return err
}
