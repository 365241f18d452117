// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/selection"
)

// DecisionTimeout bounds how long a decider may take inside the TUI.
const DecisionTimeout = 10 * time.Second

// DecisionMsg is sent when a decider has resolved a proposal.
type DecisionMsg struct {
	Proposal selection.Proposal
	Decision selection.Decision
	Err      error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after the selection summary was written to the clipboard.
type CopiedMsg struct {
	Count int
}

// Decide runs d on p off the update loop.
func Decide(d selection.Decider, p selection.Proposal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), DecisionTimeout)
		defer cancel()

		decision, err := d.Decide(ctx, p)
		if err != nil {
			return DecisionMsg{Proposal: p, Decision: selection.Reject, Err: err}
		}
		return DecisionMsg{Proposal: p, Decision: decision}
	}
}

// Status emits a status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// Writer puts text on the clipboard.
type Writer func(text string) error

// Copy writes text to the clipboard using write, or the system clipboard
// when write is nil.
func Copy(write Writer, text string, count int) tea.Cmd {
	if write == nil {
		write = clipboard.WriteAll
	}
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying selection: %w", err)}
		}
		return CopiedMsg{Count: count}
	}
}
