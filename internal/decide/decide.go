// Package decide provides the host-side decision functions a picker uses to
// accept or reject the engine's proposals.
package decide

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotpick/internal/selection"
)

// Mode names accepted in configuration.
const (
	ModeAuto    = "auto"
	ModeConfirm = "confirm"
	ModeJournal = "journal"
)

// Modes lists the valid decision modes.
func Modes() []string {
	return []string{ModeAuto, ModeConfirm, ModeJournal}
}

// IsMode reports whether name is a valid decision mode.
func IsMode(name string) bool {
	for _, m := range Modes() {
		if m == name {
			return true
		}
	}
	return false
}

// Auto accepts every proposal and logs it.
func Auto(logger *zap.Logger) selection.Decider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return selection.DeciderFunc(func(_ context.Context, p selection.Proposal) (selection.Decision, error) {
		logger.Info("accepting proposal", proposalFields(p)...)
		return selection.Accept, nil
	})
}

// Fixed always returns d.
func Fixed(d selection.Decision) selection.Decider {
	return selection.DeciderFunc(func(context.Context, selection.Proposal) (selection.Decision, error) {
		return d, nil
	})
}

// Prompt asks on out and reads a y/N answer from in. Anything other than
// "y" or "yes" rejects, including end of input.
func Prompt(in io.Reader, out io.Writer) selection.Decider {
	reader := bufio.NewReader(in)
	var mu sync.Mutex
	return selection.DeciderFunc(func(ctx context.Context, p selection.Proposal) (selection.Decision, error) {
		mu.Lock()
		defer mu.Unlock()

		if err := ctx.Err(); err != nil {
			return selection.Reject, err
		}
		fmt.Fprintf(out, "%s? [y/N]: ", Describe(p))
		input, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return selection.Reject, fmt.Errorf("reading answer: %w", err)
		}
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "y" || input == "yes" {
			return selection.Accept, nil
		}
		return selection.Reject, nil
	})
}

// Describe renders a proposal for humans, e.g. "replace Monday:1 with Tuesday:3".
func Describe(p selection.Proposal) string {
	switch p.Action {
	case selection.ActionSelect:
		return "select " + describeCandidate(p.Add)
	case selection.ActionDeselect:
		return "deselect " + describeCandidate(p.Remove)
	case selection.ActionReplace:
		return fmt.Sprintf("replace %s with %s", describeCandidate(p.Remove), describeCandidate(p.Add))
	default:
		return p.Action.String()
	}
}

func describeCandidate(c *selection.Candidate) string {
	if c == nil {
		return "?"
	}
	if c.Record.Time != "" {
		return fmt.Sprintf("%s (%s)", c.Key, c.Record.Time)
	}
	return c.Key.String()
}

func proposalFields(p selection.Proposal) []zap.Field {
	fields := []zap.Field{zap.String("action", p.Action.String())}
	if p.Add != nil {
		fields = append(fields, zap.String("add", p.Add.Key.String()), zap.String("time", p.Add.Record.Time))
	}
	if p.Remove != nil {
		fields = append(fields, zap.String("remove", p.Remove.Key.String()))
	}
	return fields
}

// JournalEntry is one recorded decision.
type JournalEntry struct {
	ID           int64
	Session      string
	Action       string
	AddDay       string
	AddNumber    string
	RemoveDay    string
	RemoveNumber string
	Decision     string
	At           time.Time
}

// Journaler persists decisions.
type Journaler interface {
	Record(ctx context.Context, e JournalEntry) error
}

// NewSession returns a fresh session identifier.
func NewSession() string {
	return uuid.NewString()
}

// Journal asks next and records the proposal with its outcome before the
// engine applies it. A journal failure is returned as an error so the
// change is not applied unrecorded.
func Journal(next selection.Decider, journal Journaler, session string) selection.Decider {
	if session == "" {
		session = NewSession()
	}
	return selection.DeciderFunc(func(ctx context.Context, p selection.Proposal) (selection.Decision, error) {
		d, err := next.Decide(ctx, p)
		if err != nil {
			return selection.Reject, err
		}
		if err := journal.Record(ctx, Entry(session, p, d)); err != nil {
			return selection.Reject, fmt.Errorf("recording decision: %w", err)
		}
		return d, nil
	})
}

// Entry builds the journal entry for a decided proposal.
func Entry(session string, p selection.Proposal, d selection.Decision) JournalEntry {
	e := JournalEntry{
		Session:  session,
		Action:   p.Action.String(),
		Decision: d.String(),
		At:       time.Now(),
	}
	if p.Add != nil {
		e.AddDay = p.Add.Key.Day
		e.AddNumber = string(p.Add.Key.Number)
	}
	if p.Remove != nil {
		e.RemoveDay = p.Remove.Key.Day
		e.RemoveNumber = string(p.Remove.Key.Number)
	}
	return e
}
