package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Open:        "#112233",
		Selected:    "#445566",
		Reserved:    "#aa3344",
		Cursor:      "#777777",
		Warning:     "#888888",
	}
}

func TestNewPalette_SlotShades(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	if palette.OpenBg != lipgloss.Color(darkenColor(base.Open)) {
		t.Fatalf("OpenBg = %q, want %q", palette.OpenBg, darkenColor(base.Open))
	}
	if palette.SelectedBg != lipgloss.Color(darkenColor(base.Selected)) {
		t.Fatalf("SelectedBg = %q, want %q", palette.SelectedBg, darkenColor(base.Selected))
	}
	if palette.ReservedBg != lipgloss.Color(muteColor(base.Reserved)) {
		t.Fatalf("ReservedBg = %q, want %q", palette.ReservedBg, muteColor(base.Reserved))
	}
	if palette.SelectedBgAlt != lipgloss.Color(alternateShade(darkenColor(base.Selected), false)) {
		t.Fatalf("SelectedBgAlt = %q, want %q", palette.SelectedBgAlt, alternateShade(darkenColor(base.Selected), false))
	}
	if palette.DisabledBg != lipgloss.Color(muteColor(base.Open)) {
		t.Fatalf("DisabledBg = %q, want %q", palette.DisabledBg, muteColor(base.Open))
	}
}

func TestNewPalette_DialogFallbacks(t *testing.T) {
	base := darkTheme()
	base.applyDefaults()

	palette := NewPalette(base)
	if palette.Dialog.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Dialog.Bg = %q, want %q", palette.Dialog.Bg, base.BgHighlight)
	}
	if palette.Dialog.Border.Dark != base.Accent {
		t.Fatalf("Dialog.Border.Dark = %q, want %q", palette.Dialog.Border.Dark, base.Accent)
	}
	if palette.Dialog.Panel.Dark != base.BgSelection {
		t.Fatalf("Dialog.Panel.Dark = %q, want %q", palette.Dialog.Panel.Dark, base.BgSelection)
	}
	if palette.Dialog.ReverseText.Dark != base.BgHighlight || palette.Dialog.ReverseText.Light != base.Fg {
		t.Fatalf("Dialog.ReverseText = %+v", palette.Dialog.ReverseText)
	}
}

func TestColorMath(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "darken halves", got: darkenColor("#c8c8c8"), want: "#646464"},
		{name: "darken floors", got: darkenColor("#102030"), want: "#282828"},
		{name: "mute floors", got: muteColor("#203040"), want: "#1e1e1e"},
		{name: "blend midpoint", got: blendColors("#000000", "#ffffff", 0.5), want: "#7f7f7f"},
		{name: "blend clamps ratio", got: blendColors("#000000", "#ffffff", 2), want: "#ffffff"},
		{name: "invalid passes through", got: darkenColor("red"), want: "red"},
		{name: "uppercase hex", got: blendColors("#FF0000", "#0000FF", 0), want: "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNewPalette_LightThemeInvertsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Open:        "#1d8a8a",
		Selected:    "#2f8f2f",
		Reserved:    "#c2410c",
		Cursor:      "#c97b00",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.OpenBg)) <= relativeLuminance(base.Open) {
		t.Fatalf("OpenBg luminance = %f, want greater than Open", relativeLuminance(string(palette.OpenBg)))
	}
	if relativeLuminance(string(palette.SelectedBg)) <= relativeLuminance(base.Selected) {
		t.Fatalf("SelectedBg luminance = %f, want greater than Selected", relativeLuminance(string(palette.SelectedBg)))
	}
}

func TestNewPalette_NilThemeUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Fatalf("Bg = %q, want mocha base", palette.Bg)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
