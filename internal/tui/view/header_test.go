package view

import (
	"testing"
	"time"
)

func TestHeaderLabels(t *testing.T) {
	monday := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	days := []DayHeader{
		{Key: "Monday", Short: "1/1", Date: monday},
		{Key: "1/2/2024", Short: "1/2/2024", Date: monday.AddDate(0, 0, 1)},
	}

	labels, today := HeaderLabels("Time", days, monday.Add(5*time.Hour))

	want := []string{"Time", "*Monday 1/1*", "1/2/2024"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
	if !today[1] || today[2] {
		t.Errorf("today columns = %v, want only column 1", today)
	}
}
