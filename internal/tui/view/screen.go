// Package view renders the picker's building blocks: the slot table, the
// footer and the confirm dialog.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Screen is one frame of the picker: the grid page and, while a proposal
// waits for an answer, the dialog spliced over it.
type Screen struct {
	Width    int
	Height   int
	Page     string
	Dialog   string
	DialogBg lipgloss.Color
}

// Compose returns the frame. Nothing is laid out before the first window
// size is known.
func Compose(s Screen) string {
	if s.Width <= 0 || s.Height <= 0 {
		return "Loading..."
	}
	if s.Dialog == "" {
		return s.Page
	}
	return splice(s)
}

// splice centers the dialog over the page. The page keeps its own cells on
// both sides of the dialog rows.
func splice(s Screen) string {
	box := strings.Split(s.Dialog, "\n")
	boxW := 0
	for _, line := range box {
		boxW = max(boxW, lipgloss.Width(line))
	}
	if boxW == 0 {
		return s.Page
	}
	boxW = min(boxW, s.Width)

	pad := lipgloss.NewStyle().Background(s.DialogBg)
	for i, line := range box {
		w := lipgloss.Width(line)
		switch {
		case w > boxW:
			line = ansi.Cut(line, 0, boxW)
		case w < boxW:
			line += pad.Render(strings.Repeat(" ", boxW-w))
		}
		box[i] = keepBackground(line, s.DialogBg) + ansi.ResetStyle
	}

	top := max(0, (s.Height-len(box))/2)
	left := max(0, (s.Width-boxW)/2)

	rows := strings.Split(Fill(s.Page, s.Width, s.Height, ""), "\n")
	for i, line := range box {
		r := top + i
		if r >= len(rows) {
			break
		}
		rows[r] = ansi.Cut(rows[r], 0, left) + line + ansi.Cut(rows[r], left+boxW, s.Width)
	}
	return strings.Join(rows, "\n")
}

// keepBackground re-applies bg after every reset inside line so styled
// spans do not punch holes into the dialog.
func keepBackground(line string, bg lipgloss.Color) string {
	if bg == "" {
		return line
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}
