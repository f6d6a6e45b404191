package schedule

import (
	"context"
	"testing"
	"time"

	"placehub/models"

	"go.uber.org/zap"
)

type mockSlotRepo struct {
	CreateFn         func(ctx context.Context, slot *models.AvailableSlot) error
	FindByDateFn     func(ctx context.Context, day time.Time) (*models.AvailableSlot, error)
	GetAllFn         func(ctx context.Context) ([]models.AvailableSlot, error)
	GetByDateRangeFn func(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error)
	ReplaceTimesFn   func(ctx context.Context, day time.Time, times []string) (*models.AvailableSlot, error)
	DeleteFn         func(ctx context.Context, day time.Time) error
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *models.AvailableSlot) error {
	return m.CreateFn(ctx, slot)
}
func (m *mockSlotRepo) FindByDate(ctx context.Context, day time.Time) (*models.AvailableSlot, error) {
	if m.FindByDateFn == nil {
		return nil, nil
	}
	return m.FindByDateFn(ctx, day)
}
func (m *mockSlotRepo) GetAll(ctx context.Context) ([]models.AvailableSlot, error) {
	return m.GetAllFn(ctx)
}
func (m *mockSlotRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
	return m.GetByDateRangeFn(ctx, start, end)
}
func (m *mockSlotRepo) ReplaceTimes(ctx context.Context, day time.Time, times []string) (*models.AvailableSlot, error) {
	return m.ReplaceTimesFn(ctx, day, times)
}
func (m *mockSlotRepo) Delete(ctx context.Context, day time.Time) error {
	return m.DeleteFn(ctx, day)
}

type mockInterviewRepo struct {
	CreateFn                 func(ctx context.Context, iv *models.Interview) error
	GetByIDFn                func(ctx context.Context, id string) (*models.Interview, error)
	FindByDayTimeFn          func(ctx context.Context, day time.Time, timeOfDay string) (*models.Interview, error)
	FindByDayTimeExcludingFn func(ctx context.Context, day time.Time, timeOfDay, excludeID string) (*models.Interview, error)
	ListByDayFn              func(ctx context.Context, day time.Time) ([]models.Interview, error)
	ListByDayRangeFn         func(ctx context.Context, start, end time.Time) ([]models.Interview, error)
	ListByOwnerFn            func(ctx context.Context, userID string) ([]models.Interview, error)
	ListFn                   func(ctx context.Context, page, limit int) ([]models.Interview, int64, error)
	UpdateFn                 func(ctx context.Context, iv *models.Interview) error
	DeleteFn                 func(ctx context.Context, id string) error
}

func (m *mockInterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	return m.CreateFn(ctx, iv)
}
func (m *mockInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockInterviewRepo) FindByDayTime(ctx context.Context, day time.Time, timeOfDay string) (*models.Interview, error) {
	if m.FindByDayTimeFn == nil {
		return nil, nil
	}
	return m.FindByDayTimeFn(ctx, day, timeOfDay)
}
func (m *mockInterviewRepo) FindByDayTimeExcluding(ctx context.Context, day time.Time, timeOfDay, excludeID string) (*models.Interview, error) {
	if m.FindByDayTimeExcludingFn == nil {
		return nil, nil
	}
	return m.FindByDayTimeExcludingFn(ctx, day, timeOfDay, excludeID)
}
func (m *mockInterviewRepo) ListByDay(ctx context.Context, day time.Time) ([]models.Interview, error) {
	if m.ListByDayFn == nil {
		return nil, nil
	}
	return m.ListByDayFn(ctx, day)
}
func (m *mockInterviewRepo) ListByDayRange(ctx context.Context, start, end time.Time) ([]models.Interview, error) {
	if m.ListByDayRangeFn == nil {
		return nil, nil
	}
	return m.ListByDayRangeFn(ctx, start, end)
}
func (m *mockInterviewRepo) ListByOwner(ctx context.Context, userID string) ([]models.Interview, error) {
	return m.ListByOwnerFn(ctx, userID)
}
func (m *mockInterviewRepo) List(ctx context.Context, page, limit int) ([]models.Interview, int64, error) {
	return m.ListFn(ctx, page, limit)
}
func (m *mockInterviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	return m.UpdateFn(ctx, iv)
}
func (m *mockInterviewRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func utcClock(t *testing.T) *Clock {
	t.Helper()
	clock, err := NewClock("UTC")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return clock
}

func newTestService(t *testing.T, slots *mockSlotRepo, interviews *mockInterviewRepo) *DefaultScheduleService {
	t.Helper()
	return &DefaultScheduleService{
		Slots:      slots,
		Interviews: interviews,
		Clock:      utcClock(t),
		Logger:     zap.NewNop(),
	}
}

func mustDay(t *testing.T, clock *Clock, date string) time.Time {
	t.Helper()
	day, err := clock.ParseDay(date)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", date, err)
	}
	return day
}
