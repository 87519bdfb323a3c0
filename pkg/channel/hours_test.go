package channel

import (
	"testing"
	"time"
)

// 2026-08-31 is a Monday.
func monday(hour, min, sec int) time.Time {
	return time.Date(2026, time.August, 31, hour, min, sec, 0, time.UTC)
}

func TestContainsWeekAndWindow(t *testing.T) {
	hours := &ServiceHours{
		Days:  []string{"Lun", "Mar", "Mie", "Jue", "Vie"},
		Start: "09:00:00",
		End:   "18:00:00",
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", monday(12, 30, 0), true},
		{"exactly at start", monday(9, 0, 0), true},
		{"just before start", monday(8, 59, 59), false},
		{"exactly at end is excluded", monday(18, 0, 0), false},
		{"last included second", monday(17, 59, 59), true},
		{"sunday not listed", time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hours.Contains(tt.now, "es")
			if err != nil {
				t.Fatalf("Contains: %v", err)
			}
			if got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestContainsEnglishLocale(t *testing.T) {
	hours := &ServiceHours{Days: []string{"Mon"}, Start: "00:00:00", End: "23:59:59"}

	in, err := hours.Contains(monday(12, 0, 0), "en")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !in {
		t.Error("expected Monday to match the en locale abbreviation")
	}

	// Unknown locales resolve day names in Spanish, so "Mon" never matches.
	in, err = hours.Contains(monday(12, 0, 0), "fr")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if in {
		t.Error("expected unknown locale to fall back to Spanish day names")
	}
}

func TestContainsEmptySchedule(t *testing.T) {
	var hours *ServiceHours
	if in, err := hours.Contains(monday(12, 0, 0), "es"); err != nil || in {
		t.Errorf("nil schedule: got %v, %v", in, err)
	}

	hours = &ServiceHours{}
	if in, err := hours.Contains(monday(12, 0, 0), "es"); err != nil || in {
		t.Errorf("empty schedule: got %v, %v", in, err)
	}
}

func TestContainsMalformedClock(t *testing.T) {
	hours := &ServiceHours{Days: []string{"Lun"}, Start: "9am", End: "18:00:00"}
	if _, err := hours.Contains(monday(12, 0, 0), "es"); err == nil {
		t.Error("expected an error for a malformed start time")
	}
}

func TestFind(t *testing.T) {
	records := []Record{
		{Code: "SUP", Name: "SuperApp"},
		{Code: "WEB", Name: "Portal"},
	}

	rec, ok := Find(records, "WEB")
	if !ok || rec.Name != "Portal" {
		t.Errorf("Find(WEB) = %+v, %v", rec, ok)
	}
	if _, ok := Find(records, "web"); ok {
		t.Error("matching must be case-sensitive")
	}
	if _, ok := Find(nil, "WEB"); ok {
		t.Error("empty slice must yield no match")
	}
}
