package schedule

import (
	"context"
	"errors"
	"strings"

	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// validateTimes trims and validates an incoming time-slot list: non-empty,
// strict HH:mm entries, no duplicates within the request. The trimmed list is
// returned in its original order.
func validateTimes(times []string) ([]string, error) {
	if len(times) == 0 {
		return nil, errValidation("Date and at least one time slot are required")
	}
	seen := make(map[string]struct{}, len(times))
	trimmed := make([]string, 0, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if !ValidTime(t) {
			return nil, errValidation("Invalid time format in slots. Use HH:mm")
		}
		if _, dup := seen[t]; dup {
			return nil, errValidation("Duplicate time slots are not allowed in the request")
		}
		seen[t] = struct{}{}
		trimmed = append(trimmed, t)
	}
	return trimmed, nil
}

// AddSlots publishes bookable times for a day. If a record already exists the
// new times are unioned into it; any overlap with the stored set is rejected
// rather than silently overwritten. The returned bool reports whether a new
// record was created.
func (s *DefaultScheduleService) AddSlots(ctx context.Context, date string, times []string) (*models.AvailableSlot, bool, error) {
	if date == "" {
		return nil, false, errValidation("Date and at least one time slot are required")
	}
	day, err := s.Clock.ParseDay(date)
	if err != nil {
		return nil, false, errValidation("Invalid date format. Use YYYY-MM-DD")
	}
	incoming, err := validateTimes(times)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Slots.FindByDate(ctx, day)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		stored := make(map[string]struct{}, len(existing.TimeSlots))
		for _, t := range existing.TimeSlots {
			stored[strings.TrimSpace(t)] = struct{}{}
		}
		for _, t := range incoming {
			if _, taken := stored[t]; taken {
				return nil, false, ErrSlotConflict
			}
		}
		merged := append(append([]string{}, existing.TimeSlots...), incoming...)
		updated, err := s.Slots.ReplaceTimes(ctx, day, merged)
		if err != nil {
			return nil, false, err
		}
		s.invalidateAvailability(ctx, day)
		return updated, false, nil
	}

	slot := &models.AvailableSlot{Date: day, TimeSlots: incoming}
	if err := s.Slots.Create(ctx, slot); err != nil {
		return nil, false, err
	}
	s.invalidateAvailability(ctx, day)
	return slot, true, nil
}

// ReplaceSlots fully overwrites the stored time set for a day.
func (s *DefaultScheduleService) ReplaceSlots(ctx context.Context, date string, times []string) (*models.AvailableSlot, error) {
	day, err := s.Clock.ParseDay(date)
	if err != nil {
		return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
	}
	incoming, err := validateTimes(times)
	if err != nil {
		return nil, err
	}

	updated, err := s.Slots.ReplaceTimes(ctx, day, incoming)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, day)
	return updated, nil
}

// GetAllSlots lists every published slot record, ordered by day ascending.
func (s *DefaultScheduleService) GetAllSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	return s.Slots.GetAll(ctx)
}

// GetSlotsByDate returns the published record for one day.
func (s *DefaultScheduleService) GetSlotsByDate(ctx context.Context, date string) (*models.AvailableSlot, error) {
	day, err := s.Clock.ParseDay(date)
	if err != nil {
		return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
	}
	slot, err := s.Slots.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return slot, nil
}

// DeleteSlots removes the published record for one day.
func (s *DefaultScheduleService) DeleteSlots(ctx context.Context, date string) error {
	day, err := s.Clock.ParseDay(date)
	if err != nil {
		return errValidation("Invalid date format. Use YYYY-MM-DD")
	}
	err = s.Slots.Delete(ctx, day)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSlotNotFound
	}
	if err != nil {
		return err
	}
	s.invalidateAvailability(ctx, day)
	return nil
}
