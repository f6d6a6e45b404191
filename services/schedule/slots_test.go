package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"placehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestAddSlotsCreatesNewRecord(t *testing.T) {
	var created *models.AvailableSlot
	slots := &mockSlotRepo{
		FindByDateFn: func(ctx context.Context, day time.Time) (*models.AvailableSlot, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, slot *models.AvailableSlot) error {
			created = slot
			return nil
		},
	}
	svc := newTestService(t, slots, &mockInterviewRepo{})

	slot, isNew, err := svc.AddSlots(context.Background(), "2025-04-02", []string{"10:00", "11:00"})
	if err != nil {
		t.Fatalf("AddSlots: %v", err)
	}
	if !isNew {
		t.Error("expected a new record to be created")
	}
	if created == nil || len(slot.TimeSlots) != 2 {
		t.Fatalf("unexpected slot: %+v", slot)
	}
	if slot.TimeSlots[0] != "10:00" || slot.TimeSlots[1] != "11:00" {
		t.Errorf("order not preserved: %v", slot.TimeSlots)
	}
}

func TestAddSlotsAppendsToExisting(t *testing.T) {
	clock := utcClock(t)
	day := mustDay(t, clock, "2025-04-02")

	var replaced []string
	slots := &mockSlotRepo{
		FindByDateFn: func(ctx context.Context, d time.Time) (*models.AvailableSlot, error) {
			return &models.AvailableSlot{Date: day, TimeSlots: []string{"09:00"}}, nil
		},
		ReplaceTimesFn: func(ctx context.Context, d time.Time, times []string) (*models.AvailableSlot, error) {
			replaced = times
			return &models.AvailableSlot{Date: d, TimeSlots: times}, nil
		},
	}
	svc := newTestService(t, slots, &mockInterviewRepo{})

	slot, isNew, err := svc.AddSlots(context.Background(), "2025-04-02", []string{"10:00"})
	if err != nil {
		t.Fatalf("AddSlots: %v", err)
	}
	if isNew {
		t.Error("expected existing record to be extended, not created")
	}
	want := []string{"09:00", "10:00"}
	if len(replaced) != 2 || replaced[0] != want[0] || replaced[1] != want[1] {
		t.Errorf("merged times = %v, want %v", replaced, want)
	}
	if len(slot.TimeSlots) != 2 {
		t.Errorf("returned slot times = %v", slot.TimeSlots)
	}
}

func TestAddSlotsRejectsOverlap(t *testing.T) {
	slots := &mockSlotRepo{
		FindByDateFn: func(ctx context.Context, d time.Time) (*models.AvailableSlot, error) {
			return &models.AvailableSlot{TimeSlots: []string{"10:00 ", "11:00"}}, nil
		},
	}
	svc := newTestService(t, slots, &mockInterviewRepo{})

	// "10:00" collides with the stored " 10:00 " after trimming.
	_, _, err := svc.AddSlots(context.Background(), "2025-04-02", []string{"10:00"})
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("err = %v, want ErrSlotConflict", err)
	}
}

func TestAddSlotsValidation(t *testing.T) {
	svc := newTestService(t, &mockSlotRepo{}, &mockInterviewRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		date  string
		times []string
	}{
		{"empty date", "", []string{"10:00"}},
		{"bad date", "02-04-2025", []string{"10:00"}},
		{"no times", "2025-04-02", nil},
		{"bad time", "2025-04-02", []string{"25:00"}},
		{"duplicate times", "2025-04-02", []string{"10:00", "10:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.AddSlots(ctx, tc.date, tc.times); !IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestReplaceSlotsUnknownDay(t *testing.T) {
	slots := &mockSlotRepo{
		ReplaceTimesFn: func(ctx context.Context, d time.Time, times []string) (*models.AvailableSlot, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := newTestService(t, slots, &mockInterviewRepo{})

	_, err := svc.ReplaceSlots(context.Background(), "2025-04-02", []string{"10:00"})
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestGetSlotsByDateMiss(t *testing.T) {
	svc := newTestService(t, &mockSlotRepo{}, &mockInterviewRepo{})

	_, err := svc.GetSlotsByDate(context.Background(), "2025-04-02")
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestDeleteSlotsUnknownDay(t *testing.T) {
	slots := &mockSlotRepo{
		DeleteFn: func(ctx context.Context, d time.Time) error {
			return mongo.ErrNoDocuments
		},
	}
	svc := newTestService(t, slots, &mockInterviewRepo{})

	if err := svc.DeleteSlots(context.Background(), "2025-04-02"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("err = %v, want ErrSlotNotFound", err)
	}
}
