package schedule

import (
	"testing"
	"time"
)

func TestValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:59", "23:59"}
	for _, s := range valid {
		if !ValidTime(s) {
			t.Errorf("ValidTime(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "24:00", "9:30", "10:60", "10:30:00", "10:30 AM", " 10:30", "ab:cd"}
	for _, s := range invalid {
		if ValidTime(s) {
			t.Errorf("ValidTime(%q) = true, want false", s)
		}
	}
}

func TestParseDayTruncates(t *testing.T) {
	clock := utcClock(t)

	day, err := clock.ParseDay("2025-04-02")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Errorf("ParseDay returned non-midnight time: %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.April || day.Day() != 2 {
		t.Errorf("ParseDay returned wrong day: %v", day)
	}
}

func TestParseDayRejectsBadInput(t *testing.T) {
	clock := utcClock(t)
	for _, s := range []string{"", "02-04-2025", "2025/04/02", "not-a-date", "2025-13-01"} {
		if _, err := clock.ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) succeeded, want error", s)
		}
	}
}

func TestDayNormalizesTimestamps(t *testing.T) {
	clock := utcClock(t)

	morning := time.Date(2025, 4, 2, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2025, 4, 2, 23, 59, 59, 0, time.UTC)
	if !clock.Day(morning).Equal(clock.Day(evening)) {
		t.Error("timestamps on the same day normalized to different days")
	}
}

func TestStartOfWeekIsSunday(t *testing.T) {
	clock := utcClock(t)

	// 2025-04-02 is a Wednesday; its week starts Sunday 2025-03-30.
	wednesday := mustDay(t, clock, "2025-04-02")
	want := mustDay(t, clock, "2025-03-30")
	if got := clock.StartOfWeek(wednesday); !got.Equal(want) {
		t.Errorf("StartOfWeek(%v) = %v, want %v", wednesday, got, want)
	}

	// A Sunday is its own week start.
	sunday := mustDay(t, clock, "2025-03-30")
	if got := clock.StartOfWeek(sunday); !got.Equal(sunday) {
		t.Errorf("StartOfWeek(sunday) = %v, want %v", got, sunday)
	}

	// A Saturday belongs to the week that started six days earlier.
	saturday := mustDay(t, clock, "2025-04-05")
	if got := clock.StartOfWeek(saturday); !got.Equal(want) {
		t.Errorf("StartOfWeek(saturday) = %v, want %v", got, want)
	}
}
