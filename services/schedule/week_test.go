package schedule

import (
	"context"
	"reflect"
	"testing"
	"time"

	"placehub/models"
)

func TestAvailableTimes(t *testing.T) {
	cases := []struct {
		name      string
		published []string
		booked    []string
		want      []string
	}{
		{"none booked", []string{"09:00", "10:00"}, nil, []string{"09:00", "10:00"}},
		{"some booked", []string{"09:00", "10:00", "11:00"}, []string{"10:00"}, []string{"09:00", "11:00"}},
		{"all booked", []string{"09:00"}, []string{"09:00"}, []string{}},
		{"order preserved", []string{"14:00", "09:00", "11:00"}, []string{"09:00"}, []string{"14:00", "11:00"}},
		{"trimmed comparison", []string{" 10:00 ", "11:00"}, []string{"10:00"}, []string{"11:00"}},
		{"booked not published ignored", []string{"09:00"}, []string{"23:00"}, []string{"09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := availableTimes(tc.published, tc.booked)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("availableTimes(%v, %v) = %v, want %v", tc.published, tc.booked, got, tc.want)
			}
		})
	}
}

func TestDayAvailabilityAbsentDay(t *testing.T) {
	svc := newTestService(t, &mockSlotRepo{}, &mockInterviewRepo{})

	avail, err := svc.DayAvailability(context.Background(), "2025-04-02")
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	if avail.IsAvailable {
		t.Error("absent day reported as available")
	}
	if len(avail.AvailableTimes) != 0 {
		t.Errorf("AvailableTimes = %v, want empty", avail.AvailableTimes)
	}
	if avail.Date != "2025-04-02" {
		t.Errorf("Date = %q", avail.Date)
	}
}

func TestDayAvailabilityComputesRemainder(t *testing.T) {
	clock := utcClock(t)
	day := mustDay(t, clock, "2025-04-02")

	slots := publishedSlots("09:00", "10:00", "11:00")
	interviews := &mockInterviewRepo{
		ListByDayFn: func(ctx context.Context, d time.Time) ([]models.Interview, error) {
			return []models.Interview{{SelectDate: day, SelectTime: "10:00"}}, nil
		},
	}
	svc := newTestService(t, slots, interviews)

	avail, err := svc.DayAvailability(context.Background(), "2025-04-02")
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(avail.AvailableTimes, want) {
		t.Errorf("AvailableTimes = %v, want %v", avail.AvailableTimes, want)
	}
	if !avail.IsAvailable {
		t.Error("IsAvailable = false with open times remaining")
	}
	if avail.Day != "Wed, Apr 2" {
		t.Errorf("Day label = %q", avail.Day)
	}
}

func TestDayAvailabilityFullyBooked(t *testing.T) {
	clock := utcClock(t)
	day := mustDay(t, clock, "2025-04-02")

	interviews := &mockInterviewRepo{
		ListByDayFn: func(ctx context.Context, d time.Time) ([]models.Interview, error) {
			return []models.Interview{{SelectDate: day, SelectTime: "09:00"}}, nil
		},
	}
	svc := newTestService(t, publishedSlots("09:00"), interviews)

	avail, err := svc.DayAvailability(context.Background(), "2025-04-02")
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	if avail.IsAvailable || len(avail.AvailableTimes) != 0 {
		t.Errorf("fully booked day: %+v", avail)
	}
}

func TestWeekAvailability(t *testing.T) {
	clock := utcClock(t)
	wednesday := mustDay(t, clock, "2025-04-02")
	friday := mustDay(t, clock, "2025-04-04")

	var gotStart, gotEnd time.Time
	slots := &mockSlotRepo{
		GetByDateRangeFn: func(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
			gotStart, gotEnd = start, end
			return []models.AvailableSlot{
				{Date: wednesday, TimeSlots: []string{"09:00", "10:00"}},
				{Date: friday, TimeSlots: []string{"14:00"}},
			}, nil
		},
	}
	interviews := &mockInterviewRepo{
		ListByDayRangeFn: func(ctx context.Context, start, end time.Time) ([]models.Interview, error) {
			return []models.Interview{
				{SelectDate: wednesday, SelectTime: "10:00"},
				{SelectDate: friday, SelectTime: "14:00"},
			}, nil
		},
	}
	svc := newTestService(t, slots, interviews)

	week, err := svc.WeekAvailability(context.Background(), "2025-04-02")
	if err != nil {
		t.Fatalf("WeekAvailability: %v", err)
	}

	// Week containing Wednesday 2025-04-02 runs Sunday 03-30 through Saturday 04-05.
	if week.WeekStart != "2025-03-30" {
		t.Errorf("WeekStart = %q", week.WeekStart)
	}
	if gotStart.Format("2006-01-02") != "2025-03-30" || gotEnd.Format("2006-01-02") != "2025-04-05" {
		t.Errorf("queried range [%v, %v]", gotStart, gotEnd)
	}

	// Unpublished days and the fully booked Friday are both omitted; only
	// Wednesday has an open time left.
	if len(week.Slots) != 1 {
		t.Fatalf("Slots = %+v, want only the day with open times", week.Slots)
	}

	wed := week.Slots[0]
	if wed.Date != "2025-04-02" || !reflect.DeepEqual(wed.AvailableTimes, []string{"09:00"}) || !wed.IsAvailable {
		t.Errorf("wednesday = %+v", wed)
	}
}

func TestWeekAvailabilityOmitsFullyBookedDay(t *testing.T) {
	clock := utcClock(t)
	friday := mustDay(t, clock, "2025-04-04")

	slots := &mockSlotRepo{
		GetByDateRangeFn: func(ctx context.Context, start, end time.Time) ([]models.AvailableSlot, error) {
			return []models.AvailableSlot{{Date: friday, TimeSlots: []string{"14:00"}}}, nil
		},
	}
	interviews := &mockInterviewRepo{
		ListByDayRangeFn: func(ctx context.Context, start, end time.Time) ([]models.Interview, error) {
			return []models.Interview{{SelectDate: friday, SelectTime: "14:00"}}, nil
		},
	}
	svc := newTestService(t, slots, interviews)

	week, err := svc.WeekAvailability(context.Background(), "2025-04-04")
	if err != nil {
		t.Fatalf("WeekAvailability: %v", err)
	}
	if len(week.Slots) != 0 {
		t.Errorf("Slots = %+v, want empty when every published time is booked", week.Slots)
	}
}

func TestWeekAvailabilityBadDate(t *testing.T) {
	svc := newTestService(t, &mockSlotRepo{}, &mockInterviewRepo{})
	if _, err := svc.WeekAvailability(context.Background(), "April 2"); !IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}
