// Package selection tracks which grid slots are selected and decides how a
// click on a slot changes that selection under a capacity cap.
package selection

import (
	"slices"
	"strconv"
)

// Number identifies a slot within its day. Grids usually number slots
// sequentially, so IntNumber is the common constructor.
type Number string

// IntNumber returns the Number for a sequential slot index.
func IntNumber(n int) Number {
	return Number(strconv.Itoa(n))
}

// SlotKey is the unique identity of a selection: a resolved day label plus the
// slot number within that day.
type SlotKey struct {
	Day    string
	Number Number
}

// String returns "Day:Number".
func (k SlotKey) String() string {
	return k.Day + ":" + string(k.Number)
}

// Record is what is kept for a selected slot. ID is empty when the host did
// not provide an external identifier.
type Record struct {
	Time string
	ID   string
}

// Entry pairs a key with its record.
type Entry struct {
	Key    SlotKey
	Record Record
}

type storedRecord struct {
	Record
	seq uint64
}

// Store holds selected slots keyed by SlotKey. It keeps two orders: the order
// in which days first gained a selection, and within each day the order in
// which slots were selected. A day is present only while it has selections.
type Store struct {
	days    []string
	perDay  map[string][]Number
	records map[SlotKey]storedRecord
	seq     uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		perDay:  make(map[string][]Number),
		records: make(map[SlotKey]storedRecord),
	}
}

// Len returns the total number of selections across all days.
func (s *Store) Len() int {
	return len(s.records)
}

// Contains reports whether a record exists at (day, number).
func (s *Store) Contains(day string, number Number) bool {
	_, ok := s.records[SlotKey{Day: day, Number: number}]
	return ok
}

// Get returns the record at (day, number).
func (s *Store) Get(day string, number Number) (Record, bool) {
	r, ok := s.records[SlotKey{Day: day, Number: number}]
	return r.Record, ok
}

// Add inserts a record at (day, number). It never overwrites: adding a key
// that is already present is a no-op. Returns true if the record was inserted.
func (s *Store) Add(day string, number Number, time, id string) bool {
	key := SlotKey{Day: day, Number: number}
	if _, ok := s.records[key]; ok {
		return false
	}

	slots, ok := s.perDay[day]
	if !ok {
		s.days = append(s.days, day)
	}
	s.perDay[day] = append(slots, number)

	s.seq++
	s.records[key] = storedRecord{Record: Record{Time: time, ID: id}, seq: s.seq}
	return true
}

// Remove deletes the record at (day, number) and drops the day once it has no
// selections left. Returns true if a record was removed.
func (s *Store) Remove(day string, number Number) bool {
	key := SlotKey{Day: day, Number: number}
	if _, ok := s.records[key]; !ok {
		return false
	}
	delete(s.records, key)

	slots := s.perDay[day]
	if i := slices.Index(slots, number); i >= 0 {
		slots = slices.Delete(slots, i, i+1)
	}
	if len(slots) == 0 {
		delete(s.perDay, day)
		if i := slices.Index(s.days, day); i >= 0 {
			s.days = slices.Delete(s.days, i, i+1)
		}
		return true
	}
	s.perDay[day] = slots
	return true
}

// First returns the earliest-inserted surviving entry. ok is false when the
// store is empty.
func (s *Store) First() (entry Entry, ok bool) {
	var best uint64
	for _, day := range s.days {
		slots := s.perDay[day]
		if len(slots) == 0 {
			continue
		}
		key := SlotKey{Day: day, Number: slots[0]}
		r := s.records[key]
		if !ok || r.seq < best {
			best = r.seq
			entry = Entry{Key: key, Record: r.Record}
			ok = true
		}
	}
	return entry, ok
}

// Days returns the day keys that currently hold selections, in the order in
// which they gained their first selection.
func (s *Store) Days() []string {
	return slices.Clone(s.days)
}

// DayLen returns the number of selections for a day.
func (s *Store) DayLen(day string) int {
	return len(s.perDay[day])
}

// DayEntries returns the entries of one day in selection order.
func (s *Store) DayEntries(day string) []Entry {
	slots := s.perDay[day]
	entries := make([]Entry, 0, len(slots))
	for _, n := range slots {
		key := SlotKey{Day: day, Number: n}
		entries = append(entries, Entry{Key: key, Record: s.records[key].Record})
	}
	return entries
}

// Entries returns all entries grouped by day, days in Days order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for _, day := range s.days {
		entries = append(entries, s.DayEntries(day)...)
	}
	return entries
}

// Clone returns a deep copy that preserves both insertion orders.
func (s *Store) Clone() *Store {
	c := &Store{
		days:    slices.Clone(s.days),
		perDay:  make(map[string][]Number, len(s.perDay)),
		records: make(map[SlotKey]storedRecord, len(s.records)),
		seq:     s.seq,
	}
	for day, slots := range s.perDay {
		c.perDay[day] = slices.Clone(slots)
	}
	for k, r := range s.records {
		c.records[k] = r
	}
	return c
}
