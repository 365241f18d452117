package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Open        lipgloss.Color
	Selected    lipgloss.Color
	Reserved    lipgloss.Color
	Cursor      lipgloss.Color
	Warning     lipgloss.Color

	OpenBg        lipgloss.Color
	OpenBgAlt     lipgloss.Color
	SelectedBg    lipgloss.Color
	SelectedBgAlt lipgloss.Color
	ReservedBg    lipgloss.Color
	DisabledBg    lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnWarning  lipgloss.Color
	TextOnCursor   lipgloss.Color
	TextOnOpen     lipgloss.Color
	TextOnSelected lipgloss.Color

	Dialog DialogColors
}

// DialogColors holds the confirm dialog colors.
type DialogColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	isLight := isLightTheme(t.Bg)
	openBgHex := slotBaseBg(t.Open, t.Bg, isLight)
	selectedBgHex := slotBaseBg(t.Selected, t.Bg, isLight)
	reservedBgHex := slotMutedBg(t.Reserved, t.Bg, isLight)
	disabledBgHex := slotMutedBg(t.Open, t.Bg, isLight)

	d := t.Dialog

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Open:        lipgloss.Color(t.Open),
		Selected:    lipgloss.Color(t.Selected),
		Reserved:    lipgloss.Color(t.Reserved),
		Cursor:      lipgloss.Color(t.Cursor),
		Warning:     lipgloss.Color(t.Warning),

		OpenBg:        lipgloss.Color(openBgHex),
		OpenBgAlt:     lipgloss.Color(alternateShade(openBgHex, isLight)),
		SelectedBg:    lipgloss.Color(selectedBgHex),
		SelectedBgAlt: lipgloss.Color(alternateShade(selectedBgHex, isLight)),
		ReservedBg:    lipgloss.Color(reservedBgHex),
		DisabledBg:    lipgloss.Color(disabledBgHex),

		TextOnAccent:   lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning:  lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnCursor:   lipgloss.Color(chooseTextColor(t.Cursor, t.Bg, t.Fg)),
		TextOnOpen:     lipgloss.Color(chooseTextColor(openBgHex, t.Bg, t.Fg)),
		TextOnSelected: lipgloss.Color(chooseTextColor(selectedBgHex, t.Bg, t.Fg)),

		Dialog: DialogColors{
			Bg:          lipgloss.Color(d.Bg),
			Border:      adaptiveColor(d.Border),
			Text:        adaptiveColor(d.Text),
			Muted:       adaptiveColor(d.Muted),
			Highlight:   adaptiveColor(d.Highlight),
			Panel:       adaptiveColor(d.Panel),
			ReverseText: reverseTextColor(d.Bg, d.Text),
		},
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func slotBaseBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

func slotMutedBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.88)
	}
	return muteColor(accent)
}
