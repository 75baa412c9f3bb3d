package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchNext moves the cursor to the next cell, in reading order after the
// cursor, whose value contains query. The search wraps around the sheet.
func (m *model) searchNext(query string) tea.Cmd {
	if query == "" {
		return nil
	}
	m.ui.searchQuery = query
	q := strings.ToLower(query)

	rows, cols := m.book.Sheet.Dims()
	total := rows * cols
	start := m.cursorRow*cols + m.cursorCol
	for step := 1; step <= total; step++ {
		pos := (start + step) % total
		r, c := pos/cols, pos%cols
		cell := m.book.Sheet.Cell(r, c)
		if cell == nil || !strings.Contains(strings.ToLower(cell.Value), q) {
			continue
		}
		m.cursorRow, m.cursorCol = r, c
		m.anchorRow, m.anchorCol = r, c
		m.needsRedraw = true
		return nil
	}
	return m.startNotice(fmt.Sprintf("%q not found", query), noticeWarn, noticeDuration)
}
