package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// click proposes a change for the slot under the cursor and routes it to
// the decider or, in confirm mode, to the dialog.
func (m Model) click() (tea.Model, tea.Cmd) {
	p, ok := m.placementAt(m.cursor)
	if !ok {
		return m, commands.Status("No slot here")
	}
	if p.Slot.Reserved {
		return m, commands.Status(fmt.Sprintf("Slot %s is reserved", p.Slot.Number))
	}

	proposal := m.engine.Propose(selection.EventAt(p, m.labels))
	if proposal.Action == selection.ActionReject {
		return m, commands.Status(fmt.Sprintf("Selection is full (%s)", m.capacityText()))
	}

	if m.confirm {
		m.pending = &proposal
		m.setMode(ModeConfirm, "proposal pending")
		return m, nil
	}
	return m, commands.Decide(m.decider, proposal)
}

// answer resolves the pending proposal with the user's choice.
func (m Model) answer(accept bool) (tea.Model, tea.Cmd) {
	if m.pending == nil {
		m.setMode(ModeNormal, "no proposal")
		return m, nil
	}
	proposal := *m.pending
	m.pending = nil
	m.setMode(ModeNormal, "answered")

	verdict := selection.Reject
	if accept {
		verdict = selection.Accept
	}
	d := decide.Fixed(verdict)
	if m.journal != nil {
		d = decide.Journal(d, m.journal, m.session)
	}
	return m, commands.Decide(d, proposal)
}

// applyDecision commits an accepted proposal.
func (m *Model) applyDecision(msg commands.DecisionMsg) tea.Cmd {
	what := decide.Describe(msg.Proposal)
	if msg.Err != nil {
		m.logger.Warn("decision failed", zap.String("proposal", what), zap.Error(msg.Err))
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorDuration)
	}
	if msg.Decision != selection.Accept {
		return m.setStatus("Declined: "+what, statusDuration)
	}
	if !m.engine.Commit(msg.Proposal) {
		return m.setStatus("Not applied: "+what, statusDuration)
	}
	return m.setStatus(capitalize(what), statusDuration)
}

func (m *Model) setStatus(msg string, d time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(d)
	return commands.ClearStatusAfter(d)
}

func (m *Model) setMode(mode Mode, reason string) {
	if m.mode == mode {
		return
	}
	m.logger.Debug("mode change",
		zap.Stringer("from", m.mode),
		zap.Stringer("to", mode),
		zap.String("reason", reason),
	)
	m.mode = mode
}

func (m Model) capacityText() string {
	if m.engine.Capacity() == selection.Unlimited {
		return fmt.Sprintf("%d/∞", m.engine.Size())
	}
	return fmt.Sprintf("%d/%d", m.engine.Size(), m.engine.Capacity())
}

// selectionSummary renders the selection one day per line.
func selectionSummary(entries []selection.Entry) string {
	var b strings.Builder
	day := ""
	for _, e := range entries {
		if e.Key.Day != day {
			if day != "" {
				b.WriteString("\n")
			}
			day = e.Key.Day
			b.WriteString(day + ": ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(string(e.Key.Number))
		if e.Record.Time != "" {
			b.WriteString(" (" + e.Record.Time + ")")
		}
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
