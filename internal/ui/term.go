package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/slotpick/internal/decide"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// Color definitions for consistent styling across the UI.
var (
	// Selected slots: bold green
	colorSelected = color.New(color.FgGreen, color.Bold)

	// Reserved slots: red, struck through
	colorReserved = color.New(color.FgRed, color.CrossedOut)

	// Open slots
	colorOpen = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Capacity reached
	colorWarning = color.New(color.FgYellow)

	colorAccepted = color.New(color.FgGreen)
	colorRejected = color.New(color.FgRed)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatSelected(s string) string {
	return colorSelected.Sprint(s)
}

func formatReserved(s string) string {
	return colorReserved.Sprint(s)
}

func formatOpen(s string) string {
	return colorOpen.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatDecision colors "accept" green and anything else red.
func formatDecision(d selection.Decision) string {
	if d == selection.Accept {
		return colorAccepted.Sprint(d.String())
	}
	return colorRejected.Sprint(d.String())
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatCapacity renders "n/cap", with ∞ for unlimited pickers.
func formatCapacity(n, capacity int) string {
	if capacity == selection.Unlimited {
		return fmt.Sprintf("%d/∞", n)
	}
	return fmt.Sprintf("%d/%d", n, capacity)
}

// printSelection writes the final selection grouped by day, days in the
// order they were first selected.
func printSelection(out io.Writer, entries []selection.Entry, capacity int) {
	header := "Selection " + formatCapacity(len(entries), capacity)
	if capacity != selection.Unlimited && len(entries) >= capacity && capacity > 0 {
		header += " " + formatWarning("(full)")
	}
	fmt.Fprintln(out, formatHeader(header))

	if len(entries) == 0 {
		fmt.Fprintln(out, formatMuted("  (nothing selected)"))
		return
	}

	var days []string
	byDay := make(map[string][]selection.Entry)
	for _, e := range entries {
		if _, ok := byDay[e.Key.Day]; !ok {
			days = append(days, e.Key.Day)
		}
		byDay[e.Key.Day] = append(byDay[e.Key.Day], e)
	}

	width := termWidth()
	for _, day := range days {
		parts := make([]string, 0, len(byDay[day]))
		plain := len(day) + 4
		for _, e := range byDay[day] {
			parts = append(parts, formatEntry(e))
			plain += len(plainEntry(e)) + 2
		}
		if plain <= width {
			fmt.Fprintf(out, "  %s: %s\n", day, strings.Join(parts, ", "))
			continue
		}
		fmt.Fprintf(out, "  %s:\n", day)
		for _, part := range parts {
			fmt.Fprintf(out, "    %s\n", part)
		}
	}
}

func formatEntry(e selection.Entry) string {
	s := formatSelected(string(e.Key.Number))
	if e.Record.Time != "" {
		s += " " + formatMuted("("+e.Record.Time+")")
	}
	if e.Record.ID != "" {
		s += " " + formatMuted("["+e.Record.ID+"]")
	}
	return s
}

func plainEntry(e selection.Entry) string {
	s := string(e.Key.Number)
	if e.Record.Time != "" {
		s += " (" + e.Record.Time + ")"
	}
	if e.Record.ID != "" {
		s += " [" + e.Record.ID + "]"
	}
	return s
}

// printClick writes one line per click: the proposal and how it was decided.
func printClick(out io.Writer, click string, p selection.Proposal, d selection.Decision) {
	if p.Action == selection.ActionReject {
		fmt.Fprintf(out, "%s %s %s\n", formatMuted(click), formatWarning("full"), formatDecision(selection.Reject))
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", formatMuted(click), decide.Describe(p), formatDecision(d))
}
