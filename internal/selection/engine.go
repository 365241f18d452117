package selection

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
)

// Unlimited is the capacity sentinel meaning "no limit".
const Unlimited = math.MaxInt

// Engine owns the selection store of one picker instance. It classifies
// clicks into proposals and applies the proposals its host accepts.
type Engine struct {
	mu         sync.Mutex
	store      *Store
	capacity   int
	continuous bool
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for proposal and commit events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithContinuous enables continuous mode.
func WithContinuous(continuous bool) Option {
	return func(e *Engine) {
		e.continuous = continuous
	}
}

// WithStore starts the engine from an existing store, usually a seeded one.
// The store is reconciled against the capacity before use.
func WithStore(s *Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// NewEngine creates an engine with the given capacity. Negative capacity is
// treated as zero.
func NewEngine(capacity int, opts ...Option) *Engine {
	e := &Engine{
		store:    NewStore(),
		capacity: clampCapacity(capacity),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store.Len() > e.capacity {
		e.store = Reconcile(e.store, e.capacity)
	}
	return e
}

func clampCapacity(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Size returns the number of selected slots.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Len()
}

// Capacity returns the configured capacity.
func (e *Engine) Capacity() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capacity
}

// Continuous reports whether continuous mode is on.
func (e *Engine) Continuous() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.continuous
}

// Contains reports whether (day, number) is selected.
func (e *Engine) Contains(day string, number Number) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Contains(day, number)
}

// Enabled reports whether an unselected slot could currently be selected.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Len() < e.capacity || (e.continuous && e.capacity > 0)
}

// Snapshot returns the current selections grouped by day.
func (e *Engine) Snapshot() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Entries()
}

// Store returns a copy of the current store.
func (e *Engine) Store() *Store {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Clone()
}

// SetContinuous switches continuous mode.
func (e *Engine) SetContinuous(continuous bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.continuous = continuous
}

// SetCapacity applies a capacity change. When the new capacity is below the
// current size the store is reconciled before SetCapacity returns.
func (e *Engine) SetCapacity(capacity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.capacity = clampCapacity(capacity)
	if e.store.Len() <= e.capacity {
		return
	}
	before := e.store.Len()
	e.store = Reconcile(e.store, e.capacity)
	e.logger.Debug("reconciled selection",
		zap.Int("capacity", e.capacity),
		zap.Int("before", before),
		zap.Int("after", e.store.Len()),
	)
}

// Propose classifies a click against the current state without changing it.
func (e *Engine) Propose(ev Event) Proposal {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := ev.Key()
	record := Record{Time: ev.Time, ID: ev.ID}
	action := Classify(e.store, key, e.capacity, e.continuous)

	var p Proposal
	switch action {
	case ActionSelect:
		p = Proposal{Action: action, Add: &Candidate{Key: key, Record: record}}
	case ActionDeselect:
		p = Proposal{Action: action, Remove: &Candidate{Key: key, Record: record}}
	case ActionReplace:
		oldest, _ := e.store.First()
		p = Proposal{
			Action: action,
			Add:    &Candidate{Key: key, Record: record},
			Remove: &Candidate{Key: oldest.Key, Record: oldest.Record},
		}
	default:
		p = Proposal{Action: ActionReject}
	}

	e.logger.Debug("proposed change",
		zap.String("action", p.Action.String()),
		zap.String("slot", key.String()),
		zap.Int("size", e.store.Len()),
		zap.Int("capacity", e.capacity),
	)
	return p
}

// Commit applies an accepted proposal and reports whether the store changed.
//
// A select is applied only while the store is still under capacity, since
// the state may have moved on since the proposal was made. A replace removes
// the evicted slot first and then adds the new one, so both sides land as a
// unit. Adding a key that is already present does nothing.
func (e *Engine) Commit(p Proposal) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	switch p.Action {
	case ActionSelect:
		changed = e.addLocked(p.Add)
	case ActionDeselect:
		changed = e.removeLocked(p.Remove)
	case ActionReplace:
		removed := e.removeLocked(p.Remove)
		added := e.addLocked(p.Add)
		changed = removed || added
	}

	e.logger.Debug("committed change",
		zap.String("action", p.Action.String()),
		zap.Bool("changed", changed),
		zap.Int("size", e.store.Len()),
	)
	return changed
}

func (e *Engine) addLocked(c *Candidate) bool {
	if c == nil || e.store.Len() >= e.capacity {
		return false
	}
	return e.store.Add(c.Key.Day, c.Key.Number, c.Record.Time, c.Record.ID)
}

func (e *Engine) removeLocked(c *Candidate) bool {
	if c == nil {
		return false
	}
	return e.store.Remove(c.Key.Day, c.Key.Number)
}

// Click runs the full cycle for one click: classify, ask the decider, and
// commit on Accept. Rejected clicks never reach the decider. Clicks on the
// same slot that arrive before an earlier one is committed are not merged;
// each one reaches the decider.
func (e *Engine) Click(ctx context.Context, ev Event, d Decider) (Proposal, Decision, error) {
	if d == nil {
		return Proposal{}, Reject, ErrNoDecider
	}

	p := e.Propose(ev)
	if p.Action == ActionReject {
		return p, Reject, nil
	}

	decision, err := d.Decide(ctx, p)
	if err != nil {
		return p, Reject, fmt.Errorf("deciding %s of %s: %w", p.Action, ev.Key(), err)
	}
	if decision == Accept {
		e.Commit(p)
	}
	return p, decision, nil
}
