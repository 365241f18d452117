// Package theme loads the picker color themes and derives the slot
// palette from them.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header row, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor row background
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Gaps, padding, muted elements
	Accent      string `toml:"accent"`       // Title, primary accent, borders
	Open        string `toml:"open"`         // Slots that can be picked
	Selected    string `toml:"selected"`     // Picked slots
	Reserved    string `toml:"reserved"`     // Slots taken by someone else
	Cursor      string `toml:"cursor"`       // Cursor marker
	Warning     string `toml:"warning"`      // Capacity reached, errors

	Dialog Dialog `toml:"dialog"`
}

// DefaultName is the theme used when none, or an unknown one, is configured.
const DefaultName = "mocha"

// Load reads an embedded theme by name. Unknown names load DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// Dialog holds the colors of the confirm dialog. Empty fields fall back
// to the base theme when the theme is loaded.
type Dialog struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
	Panel     string `toml:"panel"`
}

func (t *Theme) applyDefaults() {
	d := &t.Dialog
	d.Bg = coalesce(d.Bg, t.BgHighlight, t.Bg)
	d.Border = coalesce(d.Border, t.Accent)
	d.Text = coalesce(d.Text, t.Fg)
	d.Muted = coalesce(d.Muted, t.FgMuted)
	d.Highlight = coalesce(d.Highlight, t.BgSelection, t.Accent)
	d.Panel = coalesce(d.Panel, t.BgSelection, t.BgHighlight, t.Bg)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether name is an embedded theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
