// File: services/feedback/feedback.go
package feedback

import (
	"context"
	"errors"

	feedbackRepo "placehub/database/repository/feedback"
	"placehub/models"

	"go.uber.org/zap"
)

// FeedbackService records and lists mentor feedback for students.
type FeedbackService interface {
	AddFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error)
}

// DefaultFeedbackService is the production implementation of FeedbackService.
type DefaultFeedbackService struct {
	Repo   feedbackRepo.FeedbackRepository
	Logger *zap.Logger
}

// NewDefaultFeedbackService constructs a DefaultFeedbackService.
func NewDefaultFeedbackService(repo feedbackRepo.FeedbackRepository, logger *zap.Logger) *DefaultFeedbackService {
	return &DefaultFeedbackService{Repo: repo, Logger: logger}
}

// AddFeedback validates and stores a mentor's assessment of a student.
func (s *DefaultFeedbackService) AddFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	if fb.MentorID == "" || fb.StudentID == "" {
		return nil, errors.New("mentor id and student id are required")
	}
	if fb.Feedback == "" {
		return nil, errors.New("feedback text is required")
	}
	if fb.Score < 0 || fb.Score > 10 {
		return nil, errors.New("score must be between 0 and 10")
	}

	if err := s.Repo.Create(ctx, fb); err != nil {
		return nil, err
	}
	s.Logger.Info("feedback recorded",
		zap.String("mentorID", fb.MentorID), zap.String("studentID", fb.StudentID))
	return fb, nil
}

// ListByStudent returns a student's feedback, newest first.
func (s *DefaultFeedbackService) ListByStudent(ctx context.Context, studentID string) ([]models.Feedback, error) {
	items, err := s.Repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Feedback{}
	}
	return items, nil
}
