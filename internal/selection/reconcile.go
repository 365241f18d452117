package selection

// Reconcile trims a store down to capacity after the capacity was lowered.
//
// Days are walked in the order they gained their first selection with a
// running total. A day is kept whole while the running total plus its count
// stays under capacity. The day where the cutoff falls keeps its first
// capacity-running entries in selection order; every later day is dropped.
// A store already within capacity is returned unchanged. Negative capacity is
// treated as zero. The input store is never modified.
func Reconcile(s *Store, capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	out := s.Clone()
	if s.Len() <= capacity {
		return out
	}

	running := 0
	cut := false
	for _, day := range s.Days() {
		entries := s.DayEntries(day)
		if cut {
			for _, e := range entries {
				out.Remove(e.Key.Day, e.Key.Number)
			}
			continue
		}
		if running+len(entries) < capacity {
			running += len(entries)
			continue
		}
		allowance := capacity - running
		for _, e := range entries[allowance:] {
			out.Remove(e.Key.Day, e.Key.Number)
		}
		cut = true
	}
	return out
}
