package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/andareed/siftly-sheet/logging"
)

func (m *model) jumpToStart() {
	logging.Debugf("jumpToStart called...")
	m.cursorRow, m.cursorCol = 0, 0
	m.anchorRow, m.anchorCol = 0, 0
	m.needsRedraw = true
}

func (m *model) jumpToEnd() {
	logging.Debugf("jumpToEnd called...")
	rows, cols := m.book.Sheet.Dims()
	m.cursorRow, m.cursorCol = max(0, rows-1), max(0, cols-1)
	m.anchorRow, m.anchorCol = m.cursorRow, m.cursorCol
	m.needsRedraw = true
}

// jumpToRef moves the cursor to a cell reference such as "C12", or selects
// a range such as "A1:C3" with the cursor on its second corner.
func (m *model) jumpToRef(ref string) tea.Cmd {
	logging.Debugf("jumpToRef %q", ref)
	ref = strings.ToUpper(strings.TrimSpace(ref))

	var fromRow, fromCol, toRow, toCol int
	if strings.Contains(ref, ":") {
		from, to, err := reference.ParseRangeReference(ref)
		if err != nil {
			return m.startNotice(fmt.Sprintf("%q is not a cell range", ref), noticeWarn, noticeDuration)
		}
		fromRow, fromCol = int(from.RowIdx)-1, int(from.ColumnIdx)
		toRow, toCol = int(to.RowIdx)-1, int(to.ColumnIdx)
	} else {
		cr, err := reference.ParseCellReference(ref)
		if err != nil {
			return m.startNotice(fmt.Sprintf("%q is not a cell reference", ref), noticeWarn, noticeDuration)
		}
		fromRow, fromCol = int(cr.RowIdx)-1, int(cr.ColumnIdx)
		toRow, toCol = fromRow, fromCol
	}

	rows, cols := m.book.Sheet.Dims()
	for _, p := range [][2]int{{fromRow, fromCol}, {toRow, toCol}} {
		if p[0] < 0 || p[0] >= rows || p[1] < 0 || p[1] >= cols {
			return m.startNotice(fmt.Sprintf("%s is outside the sheet", ref), noticeWarn, noticeDuration)
		}
	}
	m.anchorRow, m.anchorCol = fromRow, fromCol
	m.cursorRow, m.cursorCol = toRow, toCol
	m.needsRedraw = true
	return nil
}
