// Package grid defines the days × slots layout a picker is built from.
package grid

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrEmptyGrid       = errors.New("grid has no days")
	ErrInvalidPeriods  = errors.New("slot periods must not be negative")
	ErrDuplicateNumber = errors.New("slot number used twice in the same day")
	ErrMissingNumber   = errors.New("slot number is required")
)

// DefaultUnit is the base time unit a period spans.
const DefaultUnit = 15 * time.Minute

// Cell is one position in a day column: either a Gap or a Slot.
type Cell interface {
	// Span returns how many base time units the cell occupies.
	Span() int
	isCell()
}

// Gap is a non-bookable placeholder used for alignment.
type Gap struct{}

// Span returns 1.
func (Gap) Span() int { return 1 }
func (Gap) isCell()   {}

// Slot is a bookable unit.
type Slot struct {
	ID       string // optional external identifier
	Number   string // unique within its day
	Reserved bool   // taken by someone else, not clickable
	Selected bool   // pre-selected by the host
	Periods  int    // base units spanned, 0 means 1
}

// Span returns the number of periods, defaulting to 1.
func (s Slot) Span() int {
	if s.Periods <= 0 {
		return 1
	}
	return s.Periods
}

func (Slot) isCell() {}

// Day is one column of cells in display order.
type Day []Cell

// Grid is the full picker layout.
type Grid struct {
	Name  string
	Start time.Time     // date and time of day 0, offset 0
	Unit  time.Duration // duration of one period
	Days  []Day
}

// NumDays returns the number of day columns.
func (g *Grid) NumDays() int {
	return len(g.Days)
}

// Periods returns the total span of a day's cells.
func (g *Grid) Periods(day int) int {
	if day < 0 || day >= len(g.Days) {
		return 0
	}
	total := 0
	for _, c := range g.Days[day] {
		total += c.Span()
	}
	return total
}

// DayLength returns the span of the longest day.
func (g *Grid) DayLength() int {
	longest := 0
	for i := range g.Days {
		longest = max(longest, g.Periods(i))
	}
	return longest
}

// Padding returns how many blank periods a day needs to reach DayLength.
func (g *Grid) Padding(day int) int {
	return max(0, g.DayLength()-g.Periods(day))
}

// UnitOrDefault returns the grid's unit or DefaultUnit when unset.
func (g *Grid) UnitOrDefault() time.Duration {
	if g.Unit <= 0 {
		return DefaultUnit
	}
	return g.Unit
}

// Validate checks the properties the picker relies on: at least one day,
// non-negative periods, and slot numbers unique within each day.
func (g *Grid) Validate() error {
	if len(g.Days) == 0 {
		return ErrEmptyGrid
	}
	for d, day := range g.Days {
		seen := make(map[string]bool, len(day))
		for i, c := range day {
			s, ok := c.(Slot)
			if !ok {
				continue
			}
			if s.Number == "" {
				return fmt.Errorf("day %d cell %d: %w", d, i, ErrMissingNumber)
			}
			if s.Periods < 0 {
				return fmt.Errorf("day %d slot %s: %w", d, s.Number, ErrInvalidPeriods)
			}
			if seen[s.Number] {
				return fmt.Errorf("day %d slot %s: %w", d, s.Number, ErrDuplicateNumber)
			}
			seen[s.Number] = true
		}
	}
	return nil
}

// Placement locates a slot: its day, its cell index, and its offset in base
// periods from the start of the day.
type Placement struct {
	Day    int
	Cell   int
	Offset int
	Slot   Slot
}

// Placements returns the slots of one day with their offsets. Every cell
// advances the offset by its span, gaps included.
func (g *Grid) Placements(day int) []Placement {
	if day < 0 || day >= len(g.Days) {
		return nil
	}
	var out []Placement
	offset := 0
	for i, c := range g.Days[day] {
		if s, ok := c.(Slot); ok {
			out = append(out, Placement{Day: day, Cell: i, Offset: offset, Slot: s})
		}
		offset += c.Span()
	}
	return out
}

// AllPlacements returns every slot in scan order: days first, then cells.
func (g *Grid) AllPlacements() []Placement {
	var out []Placement
	for d := range g.Days {
		out = append(out, g.Placements(d)...)
	}
	return out
}

// CellOffset returns the period offset of cell i in a day.
func (g *Grid) CellOffset(day, cell int) int {
	if day < 0 || day >= len(g.Days) {
		return 0
	}
	offset := 0
	for i, c := range g.Days[day] {
		if i == cell {
			break
		}
		offset += c.Span()
	}
	return offset
}

// SlotAt returns the slot at a cell, or false for gaps and out of range.
func (g *Grid) SlotAt(day, cell int) (Slot, bool) {
	if day < 0 || day >= len(g.Days) || cell < 0 || cell >= len(g.Days[day]) {
		return Slot{}, false
	}
	s, ok := g.Days[day][cell].(Slot)
	return s, ok
}
