package tui

import (
	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/view"
)

func (m Model) dialogStyles() view.DialogStyles {
	return view.DialogStyles{
		Frame:        m.styles.DialogStyle,
		Header:       m.styles.DialogHeaderStyle,
		Title:        m.styles.DialogTitleStyle,
		Tag:          m.styles.DialogTagStyle,
		Body:         m.styles.DialogBodyStyle,
		Meta:         m.styles.DialogMetaStyle,
		Hint:         m.styles.DialogHintStyle,
		Footer:       m.styles.DialogFooterStyle,
		Button:       m.styles.DialogButtonStyle,
		ButtonActive: m.styles.DialogButtonActiveStyle,
	}
}

// renderConfirmDialog renders the y/n question for the pending proposal,
// or nothing when no proposal waits.
func (m Model) renderConfirmDialog() string {
	if m.mode != ModeConfirm || m.pending == nil {
		return ""
	}
	return view.RenderDialog(confirmDialog(*m.pending, m.capacityText()), m.dialogStyles())
}

func confirmDialog(p selection.Proposal, capacity string) view.Dialog {
	return view.Dialog{
		Title:   "Apply change?",
		Tag:     p.Action.String(),
		Changes: proposalLines(p),
		Meta:    "Selected: " + capacity,
		Hint:    "enter accepts, esc rejects",
		Buttons: []string{"[y] Accept", "[n] Reject"},
	}
}

// proposalLines lists the added slot first, then the removed one.
func proposalLines(p selection.Proposal) []string {
	var lines []string
	if p.Add != nil {
		lines = append(lines, "+ "+candidateLabel(p.Add))
	}
	if p.Remove != nil {
		lines = append(lines, "- "+candidateLabel(p.Remove))
	}
	return lines
}

func candidateLabel(c *selection.Candidate) string {
	if c.Record.Time == "" {
		return c.Key.String()
	}
	return c.Key.String() + " (" + c.Record.Time + ")"
}
