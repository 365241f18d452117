package tui

import (
	"github.com/javiermolinar/slotpick/internal/tui/view"
)

// Lines the table draws around its rows: top border, header, header
// separator, bottom border.
const tableChromeLines = 4

const titleLines = 1

const timeColWidth = 12

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	GridH   int

	ColWidth    int
	VisibleDays int
	VisibleRows int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := view.FooterLines
	gridH := max(innerH-footerH-titleLines, tableChromeLines+1)

	perPage := m.config.Picker.DaysPerPage
	if perPage < 1 {
		perPage = 1
	}
	perPage = min(perPage, max(1, m.grid.NumDays()))

	colWidth := defaultColWidth
	if innerW > 0 {
		// time column, its border, and one border per day column
		avail := innerW - timeColWidth - 2
		fit := max(1, avail/(colWidth+1))
		perPage = min(perPage, fit)
		colWidth = max(colWidth, avail/perPage-1)
	}

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		FooterH:     footerH,
		GridH:       gridH,
		ColWidth:    colWidth,
		VisibleDays: perPage,
		VisibleRows: gridH - tableChromeLines,
	}
}

func (m Model) visibleDays() int {
	return max(1, m.layout.VisibleDays)
}

// visibleRows returns 0 before the first window size is known, which
// disables vertical scrolling.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.layout.VisibleRows)
}
