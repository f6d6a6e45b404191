package schedule

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"placehub/models"

	"go.uber.org/zap"
)

const availabilityCacheTTL = 2 * time.Minute

func availabilityCacheKey(day time.Time) string {
	return "availability:" + day.Format(dayFormat)
}

// invalidateAvailability drops the cached availability for a day after any
// write that could change it. Cache errors are logged, never surfaced.
func (s *DefaultScheduleService) invalidateAvailability(ctx context.Context, day time.Time) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(day)).Err(); err != nil {
		s.logger().Warn("failed to invalidate availability cache",
			zap.String("date", day.Format(dayFormat)), zap.Error(err))
	}
}

// availableTimes subtracts booked times from published ones. Comparison is on
// trimmed strings and the published order is preserved.
func availableTimes(published, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[strings.TrimSpace(t)] = struct{}{}
	}
	free := []string{}
	for _, t := range published {
		if _, ok := taken[strings.TrimSpace(t)]; !ok {
			free = append(free, t)
		}
	}
	return free
}

// DayAvailability reports the open times for a single day. A day with no
// published slot document is reported as unavailable with an empty list
// rather than as an error.
func (s *DefaultScheduleService) DayAvailability(ctx context.Context, date string) (*models.DayAvailability, error) {
	day, err := s.Clock.ParseDay(date)
	if err != nil {
		return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
	}

	if cached := s.cachedAvailability(ctx, day); cached != nil {
		return cached, nil
	}

	avail, err := s.computeDayAvailability(ctx, day)
	if err != nil {
		return nil, err
	}
	s.storeAvailability(ctx, day, avail)
	return avail, nil
}

func (s *DefaultScheduleService) computeDayAvailability(ctx context.Context, day time.Time) (*models.DayAvailability, error) {
	avail := &models.DayAvailability{
		Day:            day.Format("Mon, Jan 2"),
		Date:           day.Format(dayFormat),
		AvailableTimes: []string{},
	}

	slot, err := s.Slots.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return avail, nil
	}

	booked, err := s.Interviews.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	bookedTimes := make([]string, 0, len(booked))
	for _, iv := range booked {
		bookedTimes = append(bookedTimes, iv.SelectTime)
	}

	avail.AvailableTimes = availableTimes(slot.TimeSlots, bookedTimes)
	avail.IsAvailable = len(avail.AvailableTimes) > 0
	return avail, nil
}

func (s *DefaultScheduleService) cachedAvailability(ctx context.Context, day time.Time) *models.DayAvailability {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, availabilityCacheKey(day)).Bytes()
	if err != nil {
		return nil
	}
	var avail models.DayAvailability
	if err := json.Unmarshal(raw, &avail); err != nil {
		return nil
	}
	return &avail
}

func (s *DefaultScheduleService) storeAvailability(ctx context.Context, day time.Time, avail *models.DayAvailability) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(avail)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCacheKey(day), raw, availabilityCacheTTL).Err(); err != nil {
		s.logger().Warn("failed to cache availability",
			zap.String("date", day.Format(dayFormat)), zap.Error(err))
	}
}

// WeekAvailability aggregates availability for the Sunday-to-Saturday week
// containing the given date (or today when the date is empty). Only days with
// at least one open time appear: unpublished days and fully booked days are
// both omitted.
func (s *DefaultScheduleService) WeekAvailability(ctx context.Context, date string) (*models.WeekAvailability, error) {
	var anchor time.Time
	if date == "" {
		anchor = s.Clock.Today()
	} else {
		var err error
		anchor, err = s.Clock.ParseDay(date)
		if err != nil {
			return nil, errValidation("Invalid date format. Use YYYY-MM-DD")
		}
	}

	weekStart := s.Clock.StartOfWeek(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	slots, err := s.Slots.GetByDateRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	booked, err := s.Interviews.ListByDayRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	bookedByDay := make(map[string][]string)
	for _, iv := range booked {
		key := iv.SelectDate.Format(dayFormat)
		bookedByDay[key] = append(bookedByDay[key], iv.SelectTime)
	}

	week := &models.WeekAvailability{
		WeekStart: weekStart.Format(dayFormat),
		Slots:     []models.DayAvailability{},
	}
	for _, slot := range slots {
		key := slot.Date.Format(dayFormat)
		free := availableTimes(slot.TimeSlots, bookedByDay[key])
		if len(free) == 0 {
			continue
		}
		week.Slots = append(week.Slots, models.DayAvailability{
			Day:            slot.Date.Format("Mon, Jan 2"),
			Date:           key,
			AvailableTimes: free,
			IsAvailable:    true,
		})
	}
	return week, nil
}
