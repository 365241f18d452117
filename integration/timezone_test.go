package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

func TestStoredGridKeepsWallClock(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	zones := []*time.Location{
		time.UTC,
		time.FixedZone("EST", -5*3600),
		time.FixedZone("IST", 5*3600+1800),
	}

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			g := weekGrid()
			g.Name = "week-" + loc.String()
			g.Start = time.Date(2025, 1, 6, 9, 0, 0, 0, loc)

			if err := repo.SaveGrid(ctx, g); err != nil {
				t.Fatalf("SaveGrid failed: %v", err)
			}
			loaded, err := repo.LoadGrid(ctx, g.Name)
			if err != nil {
				t.Fatalf("LoadGrid failed: %v", err)
			}
			t.Logf("stored start %v loaded as %v", g.Start, loaded.Start)

			labels, err := grid.ForGrid(loaded, "en-US", false)
			if err != nil {
				t.Fatalf("ForGrid failed: %v", err)
			}
			if got := labels.DayKey(0); got != "1/6/2025" {
				t.Errorf("DayKey(0) = %q, want 1/6/2025", got)
			}
			if got := labels.DayKey(1); got != "1/7/2025" {
				t.Errorf("DayKey(1) = %q, want 1/7/2025", got)
			}
			// Monday:3 sits after a two-period slot and a gap.
			ev := selection.EventAt(loaded.Placements(0)[2], labels)
			if ev.Time != "11:00:00 AM" {
				t.Errorf("Monday:3 time = %q, want 11:00:00 AM", ev.Time)
			}
		})
	}
}

func TestGeneratedGridAcrossWeekend(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	// Friday 2025-01-10 plus four days: Fri, Sat, Sun, Mon.
	g, err := grid.Generate(grid.Schedule{
		Name:     "generated",
		From:     time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC),
		Days:     4,
		DayStart: 9 * time.Hour,
		DayEnd:   10 * time.Hour,
		Unit:     15 * time.Minute,
		Workday: func(d time.Weekday) bool {
			return d != time.Saturday && d != time.Sunday
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := repo.SaveGrid(ctx, g); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}
	loaded, err := repo.LoadGrid(ctx, "generated")
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}

	wantSlots := []int{4, 0, 0, 4}
	for d, want := range wantSlots {
		if got := len(loaded.Placements(d)); got != want {
			t.Errorf("day %d has %d slots, want %d", d, got, want)
		}
	}

	labels, err := grid.ForGrid(loaded, "en-US", true)
	if err != nil {
		t.Fatalf("ForGrid failed: %v", err)
	}
	last := loaded.Placements(3)[3]
	ev := selection.EventAt(last, labels)
	if ev.Day != "Monday" || ev.Number != "4" || ev.Time != "9:45:00 AM" {
		t.Errorf("last slot event = %+v", ev)
	}
}
