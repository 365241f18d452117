package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/view"
)

// View renders the picker and, in confirm mode, the dialog above it.
func (m Model) View() string {
	return view.Compose(view.Screen{
		Width:    m.width,
		Height:   m.height,
		Page:     m.renderAppContent(),
		Dialog:   m.renderConfirmDialog(),
		DialogBg: m.styles.DialogBgColor,
	})
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	title := view.PlaceBox(layout.InnerW, titleLines, lipgloss.Top, m.renderTitle(), m.styles.Background())
	gridBox := view.RenderTable(m.tableViewState())
	footerBox := view.RenderFooter(m.footerModel())

	content := lipgloss.JoinVertical(lipgloss.Left, title, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.Fill(app, m.width, m.height, m.styles.Background())
}

func (m Model) renderTitle() string {
	title := "slotpick"
	if m.grid.Name != "" {
		title += " · " + m.grid.Name
	}
	return view.Cell(m.styles.TitleStyle.Render(title), m.layout.InnerW)
}

// visibleDayRange returns the first and one-past-last visible day.
func (m Model) visibleDayRange() (int, int) {
	first := clamp(m.page, 0, max(0, m.grid.NumDays()-1))
	last := min(m.grid.NumDays(), first+m.visibleDays())
	return first, last
}

func (m Model) tableViewState() view.TableViewState {
	first, last := m.visibleDayRange()

	days := make([]view.DayHeader, 0, last-first)
	for d := first; d < last; d++ {
		h := view.DayHeader{Key: m.labels.DayKey(d), Date: m.labels.Date(d)}
		if m.config.Picker.Alpha {
			h.Short = m.labels.ShortDate(d)
		}
		days = append(days, h)
	}
	headers, todayCols := view.HeaderLabels("Time", days, m.now())

	headerStyles := make([]lipgloss.Style, len(headers))
	headerStyles[0] = m.styles.TimeColumnStyle.Bold(true)
	for i := 1; i < len(headers); i++ {
		headerStyles[i] = m.styles.DayHeader(todayCols[i])
		headers[i] = view.Cell(headers[i], m.layout.ColWidth)
	}

	return view.TableViewState{
		InnerW:       m.layout.InnerW,
		GridH:        m.layout.GridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      m.tableContent(first, last),
		BorderStyle:  m.styles.SeparatorStyle,
		Bg:           m.styles.Background(),
	}
}

func (m Model) tableContent(first, last int) view.TableContent {
	dayLen := m.grid.DayLength()
	if dayLen == 0 {
		row := []string{"", "no slots"}
		styles := []lipgloss.Style{m.styles.TimeColumnStyle, m.styles.PaddingStyle}
		return view.TableContent{Rows: [][]string{row}, CellStyles: [][]lipgloss.Style{styles}}
	}

	start := m.scroll
	end := dayLen
	if rows := m.visibleRows(); rows > 0 {
		end = min(dayLen, start+rows)
	}

	keys := make([]string, last-first)
	for d := first; d < last; d++ {
		keys[d-first] = m.labels.DayKey(d)
	}
	cursorCell, cursorStart, onCell := m.cellAt(m.cursor.Day, m.cursor.Row)
	enabled := m.engine.Enabled()
	textWidth := max(1, m.layout.ColWidth-2)

	var content view.TableContent
	for r := start; r < end; r++ {
		row := make([]string, 0, last-first+1)
		styles := make([]lipgloss.Style, 0, last-first+1)

		row = append(row, m.labels.TimeLabel(m.cursor.Day, r))
		styles = append(styles, m.styles.TimeColumnStyle)

		for d := first; d < last; d++ {
			cell, cellStart, ok := m.cellAt(d, r)
			isCursor := d == m.cursor.Day && ((onCell && ok && cell == cursorCell && cellStart == cursorStart) ||
				(!onCell && r == m.cursor.Row))

			text, style := m.renderCell(d, cell, cellStart, r, ok, keys[d-first], enabled)
			if isCursor {
				style = m.styles.CursorStyle
			}
			row = append(row, view.Cell(text, textWidth))
			styles = append(styles, style)
		}

		content.Rows = append(content.Rows, row)
		content.CellStyles = append(content.CellStyles, styles)
	}
	return content
}

// renderCell returns the text and style of one period of a day column. A
// slot shows its number on its first period only.
func (m Model) renderCell(day, cell, cellStart, row int, ok bool, dayKey string, enabled bool) (string, lipgloss.Style) {
	if !ok {
		return "", m.styles.PaddingStyle
	}
	s, isSlot := m.grid.SlotAt(day, cell)
	if !isSlot {
		return "", m.styles.GapStyle
	}

	text := ""
	if row == cellStart {
		text = "#" + s.Number
	}
	state := m.slotStateOf(s, dayKey, enabled)
	return text, m.styles.SlotStyle(state, cell%2 == 1)
}

type slotState int

const (
	slotOpen slotState = iota
	slotSelected
	slotReserved
	slotDisabled
)

func (m Model) slotStateOf(s grid.Slot, dayKey string, enabled bool) slotState {
	switch {
	case m.engine.Contains(dayKey, selection.Number(s.Number)):
		return slotSelected
	case s.Reserved:
		return slotReserved
	case !enabled:
		return slotDisabled
	default:
		return slotOpen
	}
}

func (m Model) footerModel() view.FooterModel {
	var help string
	if m.mode == ModeConfirm {
		help = m.help.View(confirmKeys{m.keys})
	} else {
		help = m.help.View(m.keys)
	}

	return view.FooterModel{
		InnerW:      m.layout.InnerW,
		StatsLine:   m.renderStatsBar(),
		LegendText:  m.renderLegend(),
		StatusText:  m.statusMsg,
		HelpText:    help,
		FooterStyle: m.styles.LegendStyle,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.Background(),
	}
}

func (m Model) renderStatsBar() string {
	bar := m.styles.StatsBarStyle
	var b strings.Builder
	b.WriteString(bar.Render("Selected "))
	b.WriteString(m.styles.StatsSelectedStyle.Render(m.capacityText()))

	first, last := m.visibleDayRange()
	b.WriteString(bar.Render(fmt.Sprintf("  Days %d-%d of %d", first+1, last, m.grid.NumDays())))

	if m.engine.Continuous() {
		b.WriteString(bar.Render("  [continuous]"))
	}
	if m.confirm {
		b.WriteString(bar.Render("  [confirm]"))
	}
	if !m.engine.Enabled() {
		b.WriteString(bar.Render("  "))
		b.WriteString(m.styles.StatsFullStyle.Render("FULL"))
	}
	return b.String()
}

func (m Model) renderLegend() string {
	parts := []string{
		m.styles.SlotOpenStyle.Render("open"),
		m.styles.SlotSelectedStyle.Render("selected"),
		m.styles.SlotReservedStyle.Render("reserved"),
		m.styles.SlotDisabledStyle.Render("full"),
	}
	return strings.Join(parts, m.styles.LegendStyle.Render(" "))
}
