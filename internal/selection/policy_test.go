package selection

import "testing"

func TestClassify(t *testing.T) {
	selected := func(keys ...SlotKey) *Store {
		s := NewStore()
		for _, k := range keys {
			s.Add(k.Day, k.Number, "", "")
		}
		return s
	}
	mon1 := SlotKey{Day: "Monday", Number: "1"}
	mon2 := SlotKey{Day: "Monday", Number: "2"}
	tue1 := SlotKey{Day: "Tuesday", Number: "1"}

	tests := []struct {
		name       string
		store      *Store
		key        SlotKey
		capacity   int
		continuous bool
		want       Action
	}{
		{
			name:     "unselected under capacity selects",
			store:    selected(mon1),
			key:      tue1,
			capacity: 2,
			want:     ActionSelect,
		},
		{
			name:     "selected under capacity deselects",
			store:    selected(mon1),
			key:      mon1,
			capacity: 2,
			want:     ActionDeselect,
		},
		{
			name:     "selected at capacity still deselects",
			store:    selected(mon1, mon2),
			key:      mon2,
			capacity: 2,
			want:     ActionDeselect,
		},
		{
			name:     "unselected at capacity rejects",
			store:    selected(mon1, mon2),
			key:      tue1,
			capacity: 2,
			want:     ActionReject,
		},
		{
			name:       "unselected at capacity in continuous mode replaces",
			store:      selected(mon1, mon2),
			key:        tue1,
			capacity:   2,
			continuous: true,
			want:       ActionReplace,
		},
		{
			name:       "zero capacity rejects even in continuous mode",
			store:      selected(),
			key:        tue1,
			capacity:   0,
			continuous: true,
			want:       ActionReject,
		},
		{
			name:     "negative capacity rejects",
			store:    selected(),
			key:      tue1,
			capacity: -3,
			want:     ActionReject,
		},
		{
			name:       "over capacity selected slot deselects",
			store:      selected(mon1, mon2, tue1),
			key:        mon1,
			capacity:   1,
			continuous: true,
			want:       ActionDeselect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.store, tt.key, tt.capacity, tt.continuous)
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionReject:   "reject",
		ActionSelect:   "select",
		ActionDeselect: "deselect",
		ActionReplace:  "replace",
		Action(42):     "Action(42)",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(a), got, want)
		}
	}
}
