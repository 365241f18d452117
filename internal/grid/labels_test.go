package grid

import (
	"testing"
	"time"
)

var monday = time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

func TestLabeler_DayKey(t *testing.T) {
	tests := []struct {
		locale string
		alpha  bool
		day    int
		want   string
	}{
		{"en-US", false, 0, "1/1/2024"},
		{"en-US", false, 1, "1/2/2024"},
		{"en-GB", false, 1, "02/01/2024"},
		{"de", false, 0, "1.1.2024"},
		{"fr-FR", false, 0, "01/01/2024"},
		{"ja", false, 0, "2024-01-01"},
		{"en-US", true, 0, "Monday"},
		{"en-US", true, 6, "Sunday"},
		{"de-DE", true, 1, "Dienstag"},
		{"", false, 0, "1/1/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.want, func(t *testing.T) {
			l, err := NewLabeler(monday, 15*time.Minute, tt.locale, tt.alpha)
			if err != nil {
				t.Fatalf("NewLabeler: %v", err)
			}
			if got := l.DayKey(tt.day); got != tt.want {
				t.Errorf("DayKey(%d) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestLabeler_TimeLabel(t *testing.T) {
	tests := []struct {
		locale string
		unit   time.Duration
		day    int
		offset int
		want   string
	}{
		{"en-US", 15 * time.Minute, 0, 0, "9:00:00 AM"},
		{"en-US", 15 * time.Minute, 0, 2, "9:30:00 AM"},
		{"en-US", 30 * time.Minute, 1, 8, "1:00:00 PM"},
		{"de", 15 * time.Minute, 0, 3, "09:45:00"},
		{"en-US", 0, 0, 1, "9:15:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			l, err := NewLabeler(monday, tt.unit, tt.locale, false)
			if err != nil {
				t.Fatal(err)
			}
			if got := l.TimeLabel(tt.day, tt.offset); got != tt.want {
				t.Errorf("TimeLabel(%d, %d) = %q, want %q", tt.day, tt.offset, got, tt.want)
			}
			// Second call is served from the cache.
			if got := l.TimeLabel(tt.day, tt.offset); got != tt.want {
				t.Errorf("cached TimeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabeler_InvalidLocale(t *testing.T) {
	if _, err := NewLabeler(monday, DefaultUnit, "not a locale!", false); err == nil {
		t.Error("expected error for invalid locale")
	}
}

func TestLabeler_LocaleAndShortDate(t *testing.T) {
	l, err := ForGrid(&Grid{Start: monday}, "en-us", false)
	if err != nil {
		t.Fatal(err)
	}
	if l.Locale() != "en-US" {
		t.Errorf("Locale() = %q, want en-US", l.Locale())
	}
	if got := l.ShortDate(9); got != "10/1" {
		t.Errorf("ShortDate(9) = %q, want 10/1", got)
	}
}

func TestLabeler_AlphaKeysRepeatAfterAWeek(t *testing.T) {
	l, err := NewLabeler(monday, DefaultUnit, "en", true)
	if err != nil {
		t.Fatal(err)
	}
	if l.DayKey(0) != l.DayKey(7) {
		t.Errorf("expected weekday keys to repeat: %q vs %q", l.DayKey(0), l.DayKey(7))
	}
}
