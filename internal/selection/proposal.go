package selection

import (
	"context"
	"errors"
)

// ErrNoDecider is returned by Engine.Click when no decider is supplied.
var ErrNoDecider = errors.New("no decider configured")

// Event is a click on a slot as forwarded by the host.
type Event struct {
	Day    string
	Number Number
	Time   string
	ID     string
}

// Key returns the slot identity of the event.
func (e Event) Key() SlotKey {
	return SlotKey{Day: e.Day, Number: e.Number}
}

// Candidate is one side of a proposed change.
type Candidate struct {
	Key    SlotKey
	Record Record
}

// Proposal is a change the engine wants to make, pending a host decision.
// Select carries Add, Deselect carries Remove, Replace carries both with Add
// presented first. Reject carries neither and is never sent to a decider.
type Proposal struct {
	Action Action
	Add    *Candidate
	Remove *Candidate
}

// Decision is the host's verdict on a proposal.
type Decision int

const (
	Reject Decision = iota
	Accept
)

// String returns "accept" or "reject".
func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "reject"
}

// Decider resolves proposals. Implementations may block, for instance while
// waiting on a prompt or a remote confirmation. The engine does not hold its
// lock while a decider runs, so further clicks can be classified against the
// state as it was before this proposal is committed.
type Decider interface {
	Decide(ctx context.Context, p Proposal) (Decision, error)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx context.Context, p Proposal) (Decision, error)

// Decide calls f.
func (f DeciderFunc) Decide(ctx context.Context, p Proposal) (Decision, error) {
	return f(ctx, p)
}
