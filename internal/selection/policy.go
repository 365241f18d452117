package selection

import "fmt"

// Action is the classification of a click.
type Action int

const (
	ActionReject   Action = iota // click has no effect
	ActionSelect                 // add the clicked slot
	ActionDeselect               // remove the clicked slot
	ActionReplace                // add the clicked slot and evict the oldest selection
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionReject:
		return "reject"
	case ActionSelect:
		return "select"
	case ActionDeselect:
		return "deselect"
	case ActionReplace:
		return "replace"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Classify decides what a click on key does given the current store, the
// capacity and whether continuous mode is on.
//
// An already selected slot is always deselected; capacity never blocks a
// removal. An unselected slot is selected while the store is under capacity.
// At capacity, continuous mode replaces the oldest selection; otherwise the
// click is rejected. A capacity of zero or less rejects every new slot, so the
// oldest entry is never requested from an empty store.
func Classify(s *Store, key SlotKey, capacity int, continuous bool) Action {
	if s.Contains(key.Day, key.Number) {
		return ActionDeselect
	}
	if capacity <= 0 {
		return ActionReject
	}
	if s.Len() < capacity {
		return ActionSelect
	}
	if continuous && s.Len() > 0 {
		return ActionReplace
	}
	return ActionReject
}
