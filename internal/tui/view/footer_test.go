package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(FooterModel{
		InnerW:     40,
		StatsLine:  "2/3 selected",
		LegendText: "legend",
		HelpText:   "q quit",
	})

	lines := strings.Split(out, "\n")
	if len(lines) != FooterLines {
		t.Fatalf("footer has %d lines, want %d", len(lines), FooterLines)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	if !strings.Contains(out, "2/3 selected") || !strings.Contains(out, "q quit") {
		t.Errorf("missing content: %q", out)
	}
}

func TestFooterLineTruncates(t *testing.T) {
	got := footerLine(10, lipgloss.NewStyle(), "a very long help text")
	if w := lipgloss.Width(got); w > 10 {
		t.Errorf("width = %d, want <= 10", w)
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"#1", 5, "#1"},
		{"#12345", 4, "#12…"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := Cell(tt.text, tt.width); got != tt.want {
			t.Errorf("Cell(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestFill(t *testing.T) {
	got := strings.Split(Fill("ab\ncdef\nx\ny", 3, 3, ""), "\n")
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3", len(got))
	}
	wantWidths := []int{3, 4, 3}
	for i, want := range wantWidths {
		if w := lipgloss.Width(got[i]); w != want {
			t.Errorf("line %d width = %d, want %d", i, w, want)
		}
	}
	if Fill("a", 0, 3, "") != "a" {
		t.Error("zero width should leave content untouched")
	}
}
