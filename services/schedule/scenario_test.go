package schedule

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	interviewRepo "placehub/database/repository/interview"
	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// In-memory repositories backing the full publish/book/cancel flow.

type memSlotRepo struct {
	byDay map[string]*models.AvailableSlot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{byDay: make(map[string]*models.AvailableSlot)}
}

func dayKey(d time.Time) string { return d.Format("2006-01-02") }

func (m *memSlotRepo) Create(ctx context.Context, slot *models.AvailableSlot) error {
	m.byDay[dayKey(slot.Date)] = slot
	return nil
}
func (m *memSlotRepo) FindByDate(ctx context.Context, day time.Time) (*models.AvailableSlot, error) {
	return m.byDay[dayKey(day)], nil
}
func (m *memSlotRepo) GetAll(ctx context.Context) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	for _, s := range m.byDay {
		out = append(out, *s)
	}
	return out, nil
}
func (m *memSlotRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s, ok := m.byDay[dayKey(d)]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (m *memSlotRepo) ReplaceTimes(ctx context.Context, day time.Time, times []string) (*models.AvailableSlot, error) {
	s, ok := m.byDay[dayKey(day)]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	s.TimeSlots = times
	return s, nil
}
func (m *memSlotRepo) Delete(ctx context.Context, day time.Time) error {
	if _, ok := m.byDay[dayKey(day)]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.byDay, dayKey(day))
	return nil
}

type memInterviewRepo struct {
	items map[string]*models.Interview
	next  int
}

func newMemInterviewRepo() *memInterviewRepo {
	return &memInterviewRepo{items: make(map[string]*models.Interview)}
}

func (m *memInterviewRepo) slotTaken(day time.Time, timeOfDay, excludeID string) bool {
	for _, iv := range m.items {
		if iv.ID != excludeID && dayKey(iv.SelectDate) == dayKey(day) && iv.SelectTime == timeOfDay {
			return true
		}
	}
	return false
}

func (m *memInterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	if m.slotTaken(iv.SelectDate, iv.SelectTime, "") {
		return interviewRepo.ErrDuplicateSlot
	}
	m.next++
	iv.ID = fmt.Sprintf("iv-%d", m.next)
	m.items[iv.ID] = iv
	return nil
}
func (m *memInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	iv, ok := m.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *iv
	return &copied, nil
}
func (m *memInterviewRepo) FindByDayTime(ctx context.Context, day time.Time, timeOfDay string) (*models.Interview, error) {
	for _, iv := range m.items {
		if dayKey(iv.SelectDate) == dayKey(day) && iv.SelectTime == timeOfDay {
			copied := *iv
			return &copied, nil
		}
	}
	return nil, nil
}
func (m *memInterviewRepo) FindByDayTimeExcluding(ctx context.Context, day time.Time, timeOfDay, excludeID string) (*models.Interview, error) {
	for _, iv := range m.items {
		if iv.ID != excludeID && dayKey(iv.SelectDate) == dayKey(day) && iv.SelectTime == timeOfDay {
			copied := *iv
			return &copied, nil
		}
	}
	return nil, nil
}
func (m *memInterviewRepo) ListByDay(ctx context.Context, day time.Time) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range m.items {
		if dayKey(iv.SelectDate) == dayKey(day) {
			out = append(out, *iv)
		}
	}
	return out, nil
}
func (m *memInterviewRepo) ListByDayRange(ctx context.Context, start, end time.Time) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range m.items {
		if !iv.SelectDate.Before(start) && !iv.SelectDate.After(end) {
			out = append(out, *iv)
		}
	}
	return out, nil
}
func (m *memInterviewRepo) ListByOwner(ctx context.Context, userID string) ([]models.Interview, error) {
	var out []models.Interview
	for _, iv := range m.items {
		if iv.UserID == userID {
			out = append(out, *iv)
		}
	}
	return out, nil
}
func (m *memInterviewRepo) List(ctx context.Context, page, limit int) ([]models.Interview, int64, error) {
	var out []models.Interview
	for _, iv := range m.items {
		out = append(out, *iv)
	}
	return out, int64(len(out)), nil
}
func (m *memInterviewRepo) Update(ctx context.Context, iv *models.Interview) error {
	if _, ok := m.items[iv.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	if m.slotTaken(iv.SelectDate, iv.SelectTime, iv.ID) {
		return interviewRepo.ErrDuplicateSlot
	}
	copied := *iv
	m.items[iv.ID] = &copied
	return nil
}
func (m *memInterviewRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return nil
}

// TestBookingLifecycle walks the whole flow: publish a day, book a time,
// watch availability shrink, fail a double booking, cancel, watch the slot
// come back.
func TestBookingLifecycle(t *testing.T) {
	svc := &DefaultScheduleService{
		Slots:      newMemSlotRepo(),
		Interviews: newMemInterviewRepo(),
		Clock:      utcClock(t),
		Logger:     zap.NewNop(),
	}
	ctx := context.Background()
	const date = "2025-04-02"

	// Publish three times.
	if _, _, err := svc.AddSlots(ctx, date, []string{"09:00", "10:00", "11:00"}); err != nil {
		t.Fatalf("AddSlots: %v", err)
	}

	// Book 10:00.
	req := models.InterviewRequest{
		SelectDate: date, SelectTime: "10:00",
		YourField: "Data Analyst", Name: "Asha",
		Email: "asha@example.com", WhatsappNumber: "+15551234567",
	}
	iv, err := svc.ScheduleInterview(ctx, req)
	if err != nil {
		t.Fatalf("ScheduleInterview: %v", err)
	}

	avail, err := svc.DayAvailability(ctx, date)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	if want := []string{"09:00", "11:00"}; !reflect.DeepEqual(avail.AvailableTimes, want) {
		t.Errorf("after booking: %v, want %v", avail.AvailableTimes, want)
	}

	// Another caller cannot take the same time.
	if _, err := svc.ScheduleInterview(ctx, req); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("double booking err = %v, want ErrSlotTaken", err)
	}

	// Cannot book a time that was never published.
	bad := req
	bad.SelectTime = "12:00"
	if _, err := svc.ScheduleInterview(ctx, bad); !errors.Is(err, ErrTimeNotAvailable) {
		t.Errorf("unpublished time err = %v, want ErrTimeNotAvailable", err)
	}

	// Move the booking to 11:00, then 10:00 is free and 11:00 is not.
	newTime := "11:00"
	if _, err := svc.UpdateInterview(ctx, iv.ID, models.InterviewPatch{SelectTime: &newTime}); err != nil {
		t.Fatalf("UpdateInterview: %v", err)
	}
	avail, _ = svc.DayAvailability(ctx, date)
	if want := []string{"09:00", "10:00"}; !reflect.DeepEqual(avail.AvailableTimes, want) {
		t.Errorf("after move: %v, want %v", avail.AvailableTimes, want)
	}

	// Cancel; all three times open again.
	if err := svc.DeleteInterview(ctx, iv.ID); err != nil {
		t.Fatalf("DeleteInterview: %v", err)
	}
	avail, _ = svc.DayAvailability(ctx, date)
	if len(avail.AvailableTimes) != 3 {
		t.Errorf("after cancel: %v, want all three times", avail.AvailableTimes)
	}

	// The week view includes the published day.
	week, err := svc.WeekAvailability(ctx, date)
	if err != nil {
		t.Fatalf("WeekAvailability: %v", err)
	}
	if week.WeekStart != "2025-03-30" || len(week.Slots) != 1 {
		t.Errorf("week = %+v", week)
	}
}
