package schedule

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	interviewRepo "placehub/database/repository/interview"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleInterview books a new interview at a published (day, time) slot.
// The flow is check-then-commit: membership in the published set and the
// absence of an existing booking are verified first, and the unique
// (selectDate, selectTime) index settles any race between concurrent
// requests that both pass the read-side check.
func (s *DefaultScheduleService) ScheduleInterview(ctx context.Context, req models.InterviewRequest) (*models.Interview, error) {
	if req.SelectDate == "" || req.SelectTime == "" || req.YourField == "" ||
		req.Email == "" || req.WhatsappNumber == "" || req.Name == "" {
		return nil, errValidation("All fields are required")
	}

	timeOfDay := strings.TrimSpace(req.SelectTime)
	if !ValidTime(timeOfDay) {
		return nil, errValidation("Invalid time format. Use HH:mm (24-hour format)")
	}
	if !validField(req.YourField) {
		return nil, errValidation("Invalid field. Choose one of: " + strings.Join(models.InterviewFields, ", "))
	}

	day, err := s.Clock.ParseDay(req.SelectDate)
	if err != nil {
		return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
	}

	if err := s.checkSlotPublished(ctx, day, timeOfDay); err != nil {
		return nil, err
	}

	existing, err := s.Interviews.FindByDayTime(ctx, day, timeOfDay)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	iv := &models.Interview{
		SelectDate:     day,
		SelectTime:     timeOfDay,
		YourField:      req.YourField,
		Name:           req.Name,
		Email:          req.Email,
		WhatsappNumber: req.WhatsappNumber,
		UserID:         req.UserID,
	}
	if err := s.Interviews.Create(ctx, iv); err != nil {
		if errors.Is(err, interviewRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	s.invalidateAvailability(ctx, day)
	s.notifyScheduled(ctx, *iv)
	return iv, nil
}

// validField reports whether f is one of the fixed interview categories.
func validField(f string) bool {
	for _, v := range models.InterviewFields {
		if v == f {
			return true
		}
	}
	return false
}

// notifyScheduled emails the booking confirmation. The booking has already
// succeeded; a notification failure is logged and swallowed.
func (s *DefaultScheduleService) notifyScheduled(ctx context.Context, iv models.Interview) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendInterviewScheduled(ctx, iv); err != nil {
		s.logger().Warn("failed to send interview confirmation",
			zap.String("interviewID", iv.ID), zap.String("email", iv.Email), zap.Error(err))
	}
}

// checkSlotPublished verifies (day, time) is in the published set, comparing
// trimmed strings so stray whitespace in stored or submitted times never
// causes a false negative.
func (s *DefaultScheduleService) checkSlotPublished(ctx context.Context, day time.Time, timeOfDay string) error {
	slot, err := s.Slots.FindByDate(ctx, day)
	if err != nil {
		return err
	}
	if slot == nil {
		return ErrTimeNotAvailable
	}
	for _, t := range slot.TimeSlots {
		if strings.TrimSpace(t) == timeOfDay {
			return nil
		}
	}
	return ErrTimeNotAvailable
}

// GetInterview fetches one interview by id.
func (s *DefaultScheduleService) GetInterview(ctx context.Context, id string) (*models.Interview, error) {
	iv, err := s.Interviews.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// ListInterviews returns one page of interviews, newest first.
func (s *DefaultScheduleService) ListInterviews(ctx context.Context, page, limit int) (*models.InterviewPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	interviews, total, err := s.Interviews.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	return &models.InterviewPage{
		Data:        interviews,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:  total,
	}, nil
}

// ListInterviewsByOwner returns the caller's interviews, newest first.
func (s *DefaultScheduleService) ListInterviewsByOwner(ctx context.Context, userID string) ([]models.Interview, error) {
	interviews, err := s.Interviews.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if interviews == nil {
		interviews = []models.Interview{}
	}
	return interviews, nil
}

// UpdateInterview applies a partial update. Only fields present in the patch
// are replaced; a present empty string is an explicit value, not "keep the
// old one". When the day or time changes, the new pair is re-validated
// against the published set and against other bookings, excluding this
// record's own id.
func (s *DefaultScheduleService) UpdateInterview(ctx context.Context, id string, patch models.InterviewPatch) (*models.Interview, error) {
	iv, err := s.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	oldDay := iv.SelectDate

	if patch.SelectTime != nil || patch.SelectDate != nil {
		newTime := iv.SelectTime
		if patch.SelectTime != nil {
			newTime = strings.TrimSpace(*patch.SelectTime)
			if !ValidTime(newTime) {
				return nil, errValidation("Invalid time format. Use HH:mm (24-hour format)")
			}
		}
		newDay := iv.SelectDate
		if patch.SelectDate != nil {
			newDay, err = s.Clock.ParseDay(*patch.SelectDate)
			if err != nil {
				return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
			}
		}

		if err := s.checkSlotPublished(ctx, newDay, newTime); err != nil {
			return nil, err
		}
		conflict, err := s.Interviews.FindByDayTimeExcluding(ctx, newDay, newTime, iv.ID)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, ErrSlotTaken
		}
		iv.SelectDate = newDay
		iv.SelectTime = newTime
	}

	if patch.YourField != nil {
		if !validField(*patch.YourField) {
			return nil, errValidation("Invalid field. Choose one of: " + strings.Join(models.InterviewFields, ", "))
		}
		iv.YourField = *patch.YourField
	}
	if patch.Name != nil {
		iv.Name = *patch.Name
	}
	if patch.Email != nil {
		iv.Email = *patch.Email
	}
	if patch.WhatsappNumber != nil {
		iv.WhatsappNumber = *patch.WhatsappNumber
	}

	if err := s.Interviews.Update(ctx, iv); err != nil {
		if errors.Is(err, interviewRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	s.invalidateAvailability(ctx, oldDay)
	s.invalidateAvailability(ctx, iv.SelectDate)
	return iv, nil
}

// DeleteInterview removes a booking, implicitly freeing its slot: availability
// is computed, so no explicit release step exists.
func (s *DefaultScheduleService) DeleteInterview(ctx context.Context, id string) error {
	iv, err := s.GetInterview(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Interviews.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInterviewNotFound
		}
		return err
	}
	s.invalidateAvailability(ctx, iv.SelectDate)
	return nil
}
