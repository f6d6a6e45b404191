package schedule

import (
	"context"

	interviewRepo "placehub/database/repository/interview"
	slotRepo "placehub/database/repository/slot"
	"placehub/models"
	"placehub/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ScheduleService is the interview slot-booking subsystem: published-slot
// management, interview scheduling with conflict detection, and availability
// aggregation.
type ScheduleService interface {
	// Published slots (admin-managed).
	AddSlots(ctx context.Context, date string, times []string) (*models.AvailableSlot, bool, error)
	ReplaceSlots(ctx context.Context, date string, times []string) (*models.AvailableSlot, error)
	GetAllSlots(ctx context.Context) ([]models.AvailableSlot, error)
	GetSlotsByDate(ctx context.Context, date string) (*models.AvailableSlot, error)
	DeleteSlots(ctx context.Context, date string) error

	// Interviews.
	ScheduleInterview(ctx context.Context, req models.InterviewRequest) (*models.Interview, error)
	GetInterview(ctx context.Context, id string) (*models.Interview, error)
	ListInterviews(ctx context.Context, page, limit int) (*models.InterviewPage, error)
	ListInterviewsByOwner(ctx context.Context, userID string) ([]models.Interview, error)
	UpdateInterview(ctx context.Context, id string, patch models.InterviewPatch) (*models.Interview, error)
	DeleteInterview(ctx context.Context, id string) error

	// Availability (published minus booked).
	DayAvailability(ctx context.Context, date string) (*models.DayAvailability, error)
	WeekAvailability(ctx context.Context, weekStart string) (*models.WeekAvailability, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Slots      slotRepo.SlotRepository
	Interviews interviewRepo.InterviewRepository
	Notifier   notification.Service
	Clock      *Clock
	// Cache is optional; when set, single-day availability responses are
	// cached briefly and invalidated on every write touching the day.
	Cache  *redis.Client
	Logger *zap.Logger
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
