package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 14

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorSelected    lipgloss.Color
	colorReserved    lipgloss.Color
	colorCursor      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent   lipgloss.Color
	colorTextOnWarning  lipgloss.Color
	colorTextOnCursor   lipgloss.Color
	colorTextOnOpen     lipgloss.Color
	colorTextOnSelected lipgloss.Color

	// Slot backgrounds, with an alternate shade for adjacent slots
	colorOpenBg        lipgloss.Color
	colorOpenBgAlt     lipgloss.Color
	colorSelectedBg    lipgloss.Color
	colorSelectedBgAlt lipgloss.Color
	colorReservedBg    lipgloss.Color
	colorDisabledBg    lipgloss.Color

	TitleStyle lipgloss.Style

	// Header styles
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Slot cell styles
	SlotOpenStyle        lipgloss.Style
	SlotOpenAltStyle     lipgloss.Style
	SlotSelectedStyle    lipgloss.Style
	SlotSelectedAltStyle lipgloss.Style
	SlotReservedStyle    lipgloss.Style
	SlotDisabledStyle    lipgloss.Style
	GapStyle             lipgloss.Style
	PaddingStyle         lipgloss.Style
	CursorStyle          lipgloss.Style

	// Footer
	StatsBarStyle      lipgloss.Style
	StatsSelectedStyle lipgloss.Style
	StatsFullStyle     lipgloss.Style
	LegendStyle        lipgloss.Style
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style

	// Confirm dialog
	DialogBgColor           lipgloss.Color
	DialogStyle             lipgloss.Style
	DialogHeaderStyle       lipgloss.Style
	DialogFooterStyle       lipgloss.Style
	DialogTitleStyle        lipgloss.Style
	DialogBodyStyle         lipgloss.Style
	DialogMetaStyle         lipgloss.Style
	DialogTagStyle          lipgloss.Style
	DialogButtonStyle       lipgloss.Style
	DialogButtonActiveStyle lipgloss.Style
	DialogHintStyle         lipgloss.Style

	AppStyle       lipgloss.Style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)

	s := &Styles{
		colorBg:          palette.Bg,
		colorBgSelection: palette.BgSelection,
		colorFg:          palette.Fg,
		colorFgMuted:     palette.FgMuted,
		colorAccent:      palette.Accent,
		colorSelected:    palette.Selected,
		colorReserved:    palette.Reserved,
		colorCursor:      palette.Cursor,
		colorWarning:     palette.Warning,

		colorTextOnAccent:   palette.TextOnAccent,
		colorTextOnWarning:  palette.TextOnWarning,
		colorTextOnCursor:   palette.TextOnCursor,
		colorTextOnOpen:     palette.TextOnOpen,
		colorTextOnSelected: palette.TextOnSelected,

		colorOpenBg:        palette.OpenBg,
		colorOpenBgAlt:     palette.OpenBgAlt,
		colorSelectedBg:    palette.SelectedBg,
		colorSelectedBgAlt: palette.SelectedBgAlt,
		colorReservedBg:    palette.ReservedBg,
		colorDisabledBg:    palette.DisabledBg,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Align(lipgloss.Center)

	s.DayHeaderTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Align(lipgloss.Center)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Align(lipgloss.Right).
		PaddingRight(1)

	s.SlotOpenStyle = lipgloss.NewStyle().
		Background(s.colorOpenBg).
		Foreground(s.colorTextOnOpen).
		Padding(0, 1)

	s.SlotOpenAltStyle = lipgloss.NewStyle().
		Background(s.colorOpenBgAlt).
		Foreground(s.colorTextOnOpen).
		Padding(0, 1)

	s.SlotSelectedStyle = lipgloss.NewStyle().
		Background(s.colorSelectedBg).
		Foreground(s.colorTextOnSelected).
		Bold(true).
		Padding(0, 1)

	s.SlotSelectedAltStyle = lipgloss.NewStyle().
		Background(s.colorSelectedBgAlt).
		Foreground(s.colorTextOnSelected).
		Bold(true).
		Padding(0, 1)

	s.SlotReservedStyle = lipgloss.NewStyle().
		Background(s.colorReservedBg).
		Foreground(s.colorReserved).
		Strikethrough(true).
		Padding(0, 1)

	// Open slots while the picker is full and not continuous
	s.SlotDisabledStyle = lipgloss.NewStyle().
		Background(s.colorDisabledBg).
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.GapStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.PaddingStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Foreground(s.colorBgSelection)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorCursor).
		Foreground(s.colorTextOnCursor).
		Bold(true).
		Padding(0, 1)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatsSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorSelected).
		Background(s.colorBg).
		Bold(true)

	s.StatsFullStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnWarning).
		Background(s.colorWarning).
		Bold(true).
		Padding(0, 1)

	s.LegendStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	dlg := palette.Dialog
	s.DialogBgColor = dlg.Bg

	s.DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dlg.Border).
		Background(dlg.Bg).
		Foreground(dlg.Text).
		Padding(1, 1).
		Width(52).
		Align(lipgloss.Left)

	s.DialogHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(dlg.Text).
		Background(dlg.Bg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.DialogFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(dlg.Bg)

	s.DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(dlg.Text).
		Background(dlg.Bg)

	s.DialogBodyStyle = lipgloss.NewStyle().
		Foreground(dlg.Text).
		Background(dlg.Bg)

	s.DialogMetaStyle = lipgloss.NewStyle().
		Foreground(dlg.Muted).
		Background(dlg.Bg)

	s.DialogTagStyle = lipgloss.NewStyle().
		Foreground(dlg.Text).
		Background(dlg.Panel).
		Bold(true).
		Padding(0, 1)

	s.DialogButtonStyle = lipgloss.NewStyle().
		Background(dlg.Panel).
		Foreground(dlg.Text).
		Padding(0, 3)

	s.DialogButtonActiveStyle = lipgloss.NewStyle().
		Background(dlg.Highlight).
		Foreground(dlg.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.DialogHintStyle = lipgloss.NewStyle().
		Foreground(dlg.Muted).
		Background(dlg.Bg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// SlotStyle returns the style for a slot in the given state. alt selects
// the alternate shade used on every other cell.
func (s *Styles) SlotStyle(state slotState, alt bool) lipgloss.Style {
	switch state {
	case slotSelected:
		if alt {
			return s.SlotSelectedAltStyle
		}
		return s.SlotSelectedStyle
	case slotReserved:
		return s.SlotReservedStyle
	case slotDisabled:
		return s.SlotDisabledStyle
	default:
		if alt {
			return s.SlotOpenAltStyle
		}
		return s.SlotOpenStyle
	}
}

// DayHeader returns the header style of a day column.
func (s *Styles) DayHeader(today bool) lipgloss.Style {
	if today {
		return s.DayHeaderTodayStyle
	}
	return s.DayHeaderStyle
}

// Background returns the base background color.
func (s *Styles) Background() lipgloss.Color {
	return s.colorBg
}
