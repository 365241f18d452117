package selection

import "github.com/javiermolinar/slotpick/internal/grid"

// Labels resolves the day key and time label of a slot position.
type Labels interface {
	DayKey(day int) string
	TimeLabel(day, offset int) string
}

// Seed builds a store from the slots the host marked as selected. Slots are
// taken in scan order (days first, then cells) until capacity is reached;
// slots that resolve to an already seeded key are skipped.
func Seed(g *grid.Grid, labels Labels, capacity int) *Store {
	s := NewStore()
	if g == nil || capacity <= 0 {
		return s
	}
	for _, p := range g.AllPlacements() {
		if s.Len() >= capacity {
			break
		}
		if !p.Slot.Selected {
			continue
		}
		s.Add(labels.DayKey(p.Day), Number(p.Slot.Number), labels.TimeLabel(p.Day, p.Offset), p.Slot.ID)
	}
	return s
}

// EventAt builds the click event for a placement.
func EventAt(p grid.Placement, labels Labels) Event {
	return Event{
		Day:    labels.DayKey(p.Day),
		Number: Number(p.Slot.Number),
		Time:   labels.TimeLabel(p.Day, p.Offset),
		ID:     p.Slot.ID,
	}
}
