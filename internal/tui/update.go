package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(m.width, m.height)
		m.help.Width = m.layout.InnerW
		m.ensureCursorVisible()
		return m, nil

	case commands.DecisionMsg:
		cmd := m.applyDecision(msg)
		return m, cmd

	case commands.CopiedMsg:
		cmd := m.setStatus(fmt.Sprintf("Copied %d slots", msg.Count), statusDuration)
		return m, cmd

	case commands.ErrMsg:
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorDuration)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, statusDuration)
		return m, cmd

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}
