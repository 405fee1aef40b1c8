package schedule

import (
	"fmt"
	"testing"
	"time"
)

func TestGenerateTimeSlots_TodayMasksPastHours(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	slots := GenerateTimeSlots(true, now)
	if len(slots) != CloseHour-OpenHour+1 {
		t.Fatalf("expected %d slots, got %d", CloseHour-OpenHour+1, len(slots))
	}
	if slots[0].Time != "09.00" {
		t.Fatalf("expected first slot 09.00, got %s", slots[0].Time)
	}

	// Every slot at or before the current hour (14) must be unavailable.
	for _, s := range slots {
		var hour, minute int
		if _, err := fmt.Sscanf(s.Time, "%d.%d", &hour, &minute); err != nil {
			t.Fatalf("bad slot label %q: %v", s.Time, err)
		}
		wantAvailable := hour > now.Hour()
		if s.Available != wantAvailable {
			t.Fatalf("slot %s: expected available=%v, got %v", s.Time, wantAvailable, s.Available)
		}
	}
}

func TestGenerateTimeSlots_OtherDayAllAvailable(t *testing.T) {
	// Late in the evening: on any non-today date the hour must not matter.
	now := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)

	for _, s := range GenerateTimeSlots(false, now) {
		if !s.Available {
			t.Fatalf("slot %s should be available on a non-today date", s.Time)
		}
	}
}

func TestGenerateTimeSlots_AfterClosingAllMasked(t *testing.T) {
	now := time.Date(2026, 8, 29, 20, 5, 0, 0, time.UTC)

	for _, s := range GenerateTimeSlots(true, now) {
		if s.Available {
			t.Fatalf("slot %s should be unavailable after the last opening hour", s.Time)
		}
	}
}

func TestNextSevenDays(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) // a Saturday

	dates := NextSevenDays(now)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0].Day != "Sab" || dates[0].Date != "29" {
		t.Fatalf("unexpected first entry: %+v", dates[0])
	}
	if dates[0].FullDate != "Sabtu, 29 Agustus 2026" {
		t.Fatalf("unexpected full date: %s", dates[0].FullDate)
	}
	if dates[1].Day != "Min" {
		t.Fatalf("expected Sunday after Saturday, got %s", dates[1].Day)
	}
}
