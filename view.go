package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/dialogs"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Center(m.activeDialog.View(), m.terminalWidth, m.terminalHeight)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, bordered, m.footerView(contentW)))
}

// gutterWidth is the width of the row number column.
func (m *model) gutterWidth() int {
	rows, _ := m.book.Sheet.Dims()
	return len(strconv.Itoa(rows)) + 1
}

// visibleRange returns the half-open row and column ranges drawn in the
// viewport.
func (m *model) visibleRange() (rowEnd, colEnd int) {
	rows, cols := m.book.Sheet.Dims()
	rowEnd = min(rows, m.ui.rowOffset+max(1, m.viewport.Height-1))
	colEnd = min(cols, m.ui.colOffset+m.visibleCols())
	return rowEnd, colEnd
}

func (m *model) headerView(sel grid.Selection, colEnd int) string {
	cells := []string{gutterStyle.Width(m.gutterWidth()).Render("")}
	for c := m.ui.colOffset; c < colEnd; c++ {
		st := headerStyle
		if c >= sel.ColStart && c <= sel.ColEnd {
			st = headerActiveStyle
		}
		cells = append(cells, st.Render(grid.ColumnName(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderGrid draws the visible part of the sheet, header included.
func (m *model) renderGrid() string {
	sel := m.selection().Normalize()
	rowEnd, colEnd := m.visibleRange()
	logging.Debugf("renderGrid rows=%d-%d cols=%d-%d sel=%s", m.ui.rowOffset, rowEnd, m.ui.colOffset, colEnd, sel)

	lines := []string{m.headerView(sel, colEnd)}
	gw := m.gutterWidth()
	for r := m.ui.rowOffset; r < rowEnd; r++ {
		gutter := gutterStyle
		if r >= sel.RowStart && r <= sel.RowEnd {
			gutter = gutterActiveStyle
		}
		cells := []string{gutter.Width(gw).Render(strconv.Itoa(r + 1))}
		for c := m.ui.colOffset; c < colEnd; c++ {
			cells = append(cells, m.renderCell(r, c, sel))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

// renderCell layers the cell's own formatting over cellStyle, then marks
// the cursor and the rest of the selection.
func (m *model) renderCell(row, col int, sel grid.Selection) string {
	value := ""
	st := cellstyle.Default()
	if c := m.book.Sheet.Cell(row, col); c != nil {
		value, st = c.Value, c.Style()
	}

	ls := st.ToRenderStyle(m.book.Palette).Lipgloss(cellStyle)
	_, hasBackground := st.BackgroundColor()
	switch {
	case row == m.cursorRow && col == m.cursorCol:
		ls = ls.Reverse(true)
	case sel.Contains(row, col) && !hasBackground:
		ls = ls.Background(lipgloss.Color(selectedBGColor))
	}
	return ls.Render(fitCell(value, columnWidth-2))
}

// fitCell flattens value to a single line no wider than w.
func fitCell(value string, w int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	return runewidth.Truncate(value, w, "…")
}
