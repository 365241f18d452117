package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dialog is the question asked for a pending proposal.
type Dialog struct {
	Title   string
	Tag     string   // action name
	Changes []string // one line per side of the change
	Meta    string
	Hint    string
	Buttons []string
	Active  int // highlighted button
}

// DialogStyles groups the styles a dialog is drawn with.
type DialogStyles struct {
	Frame        lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Tag          lipgloss.Style
	Body         lipgloss.Style
	Meta         lipgloss.Style
	Hint         lipgloss.Style
	Footer       lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// RenderDialog draws the dialog inside its frame.
func RenderDialog(d Dialog, s DialogStyles) string {
	var b strings.Builder

	b.WriteString(s.Header.Render(s.Title.Render(d.Title)))

	if d.Tag != "" || len(d.Changes) > 0 {
		b.WriteString("\n\n")
		if d.Tag != "" {
			b.WriteString(s.Tag.Render(d.Tag))
		}
		for i, change := range d.Changes {
			if i > 0 || d.Tag != "" {
				b.WriteString("\n")
			}
			b.WriteString(s.Body.Render(change))
		}
	}
	if d.Meta != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Meta.Render(d.Meta))
	}
	if d.Hint != "" {
		b.WriteString("\n")
		b.WriteString(s.Hint.Render(d.Hint))
	}
	if len(d.Buttons) > 0 {
		b.WriteString("\n\n")
		b.WriteString(s.Footer.Render(renderButtons(d.Buttons, d.Active, s)))
	}

	return s.Frame.Render(b.String())
}

// renderButtons joins the buttons with body-styled gaps so the dialog
// background shows between them.
func renderButtons(labels []string, active int, s DialogStyles) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := s.Button
		if i == active {
			style = s.ButtonActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, s.Body.Render(" "))
}
