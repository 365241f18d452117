package tui

import "github.com/javiermolinar/slotpick/internal/grid"

// cellAt returns the cell covering a period row of a day and the row the
// cell starts at. Rows past the day's cells are padding.
func (m Model) cellAt(day, row int) (cell, start int, ok bool) {
	if day < 0 || day >= m.grid.NumDays() || row < 0 {
		return 0, 0, false
	}
	offset := 0
	for i, c := range m.grid.Days[day] {
		span := c.Span()
		if row >= offset && row < offset+span {
			return i, offset, true
		}
		offset += span
	}
	return 0, 0, false
}

// placementAt returns the slot under a position, if any.
func (m Model) placementAt(pos Position) (grid.Placement, bool) {
	cell, start, ok := m.cellAt(pos.Day, pos.Row)
	if !ok {
		return grid.Placement{}, false
	}
	s, ok := m.grid.SlotAt(pos.Day, cell)
	if !ok {
		return grid.Placement{}, false
	}
	return grid.Placement{Day: pos.Day, Cell: cell, Offset: start, Slot: s}, true
}

// snapRow moves row to the start of the cell covering it.
func (m Model) snapRow(day, row int) int {
	if _, start, ok := m.cellAt(day, row); ok {
		return start
	}
	return row
}

func (m Model) firstSlotRow(day int) int {
	if ps := m.grid.Placements(day); len(ps) > 0 {
		return ps[0].Offset
	}
	return 0
}

func (m Model) lastRow() int {
	return max(0, m.grid.DayLength()-1)
}

func (m Model) nextRowDown() int {
	row := m.cursor.Row + 1
	if cell, start, ok := m.cellAt(m.cursor.Day, m.cursor.Row); ok {
		row = start + m.grid.Days[m.cursor.Day][cell].Span()
	}
	if row > m.lastRow() {
		return m.cursor.Row
	}
	return row
}

func (m Model) nextRowUp() int {
	row := m.snapRow(m.cursor.Day, m.cursor.Row) - 1
	if row < 0 {
		return m.cursor.Row
	}
	return m.snapRow(m.cursor.Day, row)
}

func (m *Model) moveDay(delta int) {
	day := clamp(m.cursor.Day+delta, 0, m.grid.NumDays()-1)
	m.cursor.Day = day
	m.cursor.Row = m.snapRow(day, min(m.cursor.Row, m.lastRow()))
	m.ensureCursorVisible()
}

// movePage shifts the visible days by a page and keeps the cursor at the
// same column within the page.
func (m *Model) movePage(delta int) {
	perPage := m.visibleDays()
	maxPage := max(0, m.grid.NumDays()-perPage)
	page := clamp(m.page+delta*perPage, 0, maxPage)
	col := m.cursor.Day - m.page
	m.page = page
	m.cursor.Day = clamp(page+col, 0, m.grid.NumDays()-1)
	m.cursor.Row = m.snapRow(m.cursor.Day, m.cursor.Row)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	perPage := m.visibleDays()
	if m.cursor.Day < m.page {
		m.page = m.cursor.Day
	}
	if m.cursor.Day >= m.page+perPage {
		m.page = m.cursor.Day - perPage + 1
	}

	rows := m.visibleRows()
	if rows <= 0 {
		return
	}
	if m.cursor.Row < m.scroll {
		m.scroll = m.cursor.Row
	}
	if m.cursor.Row >= m.scroll+rows {
		m.scroll = m.cursor.Row - rows + 1
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
