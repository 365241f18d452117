package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Click    key.Binding
	Copy     key.Binding
	Quit     key.Binding

	Accept key.Binding
	Reject key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "day")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "day")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "slot")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "slot")),
		PrevPage: key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "next page")),
		Click:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Accept: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "accept")),
		Reject: key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "reject")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.PrevPage, k.NextPage, k.Click, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevPage, k.NextPage},
		{k.Click, k.Copy, k.Quit},
	}
}

type confirmKeys struct {
	keyMap
}

// ShortHelp implements help.KeyMap for the confirm dialog.
func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Reject}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key press", keyFields(msg, m.mode)...)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModeConfirm {
		return m.handleConfirmKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveDay(1)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = m.nextRowDown()
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = m.nextRowUp()
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.PrevPage):
		m.movePage(-1)
	case key.Matches(msg, m.keys.NextPage):
		m.movePage(1)

	case key.Matches(msg, m.keys.Click):
		return m.click()

	case key.Matches(msg, m.keys.Copy):
		entries := m.engine.Snapshot()
		if len(entries) == 0 {
			return m, commands.Status("Nothing selected")
		}
		return m, commands.Copy(m.clipboard, selectionSummary(entries), len(entries))
	}

	return m, nil
}

// handleConfirmKeys answers the pending proposal.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		return m.answer(true)
	case key.Matches(msg, m.keys.Reject):
		return m.answer(false)
	}
	return m, nil
}
