package grid

import (
	"errors"
	"strconv"
	"time"
)

// ErrEmptyWorkday is returned when the working window holds no full period.
var ErrEmptyWorkday = errors.New("day end must be at least one unit after day start")

// Schedule describes a generated grid: consecutive days from From, each
// offering back-to-back single-period slots between DayStart and DayEnd.
type Schedule struct {
	Name     string
	From     time.Time
	Days     int
	DayStart time.Duration // offset from midnight
	DayEnd   time.Duration
	Unit     time.Duration
	// Workday filters open days. Closed days stay in the grid as empty
	// columns so day i is still From + i days. Nil opens every day.
	Workday func(time.Weekday) bool
}

// Generate builds a grid from a schedule. Slots are numbered from 1 within
// each day.
func Generate(s Schedule) (*Grid, error) {
	unit := s.Unit
	if unit <= 0 {
		unit = DefaultUnit
	}
	perDay := int((s.DayEnd - s.DayStart) / unit)
	if perDay <= 0 {
		return nil, ErrEmptyWorkday
	}
	if s.Days <= 0 {
		return nil, ErrEmptyGrid
	}

	from := time.Date(s.From.Year(), s.From.Month(), s.From.Day(), 0, 0, 0, 0, s.From.Location())
	g := &Grid{
		Name:  s.Name,
		Start: from.Add(s.DayStart),
		Unit:  unit,
		Days:  make([]Day, s.Days),
	}
	for d := range g.Days {
		date := from.AddDate(0, 0, d)
		if s.Workday != nil && !s.Workday(date.Weekday()) {
			g.Days[d] = Day{}
			continue
		}
		day := make(Day, perDay)
		for i := range day {
			day[i] = Slot{Number: strconv.Itoa(i + 1)}
		}
		g.Days[d] = day
	}
	return g, nil
}
