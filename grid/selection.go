package grid

import "fmt"

// None marks an unset selection coordinate.
const None = -1

// Selection is a rectangular block of cells. The corners may be given in any
// order; Normalize puts the top-left corner first.
type Selection struct {
	RowStart, ColStart int
	RowEnd, ColEnd     int
}

// NoSelection addresses no cells.
var NoSelection = Selection{None, None, None, None}

// Single selects one cell.
func Single(row, col int) Selection {
	return Selection{RowStart: row, ColStart: col, RowEnd: row, ColEnd: col}
}

// Rect selects the block spanned by two corners.
func Rect(row0, col0, row1, col1 int) Selection {
	return Selection{RowStart: row0, ColStart: col0, RowEnd: row1, ColEnd: col1}
}

// Empty reports whether the selection addresses no cells. A selection with
// any unset (negative) coordinate is empty.
func (s Selection) Empty() bool {
	return s.RowStart < 0 || s.ColStart < 0 || s.RowEnd < 0 || s.ColEnd < 0
}

func (s Selection) Normalize() Selection {
	return Selection{
		RowStart: min(s.RowStart, s.RowEnd),
		ColStart: min(s.ColStart, s.ColEnd),
		RowEnd:   max(s.RowStart, s.RowEnd),
		ColEnd:   max(s.ColStart, s.ColEnd),
	}
}

// MultiCell reports whether more than one cell is addressed, i.e. the two
// corners differ.
func (s Selection) MultiCell() bool {
	if s.Empty() {
		return false
	}
	return s.RowStart != s.RowEnd || s.ColStart != s.ColEnd
}

func (s Selection) Rows() int {
	if s.Empty() {
		return 0
	}
	n := s.Normalize()
	return n.RowEnd - n.RowStart + 1
}

func (s Selection) Cols() int {
	if s.Empty() {
		return 0
	}
	n := s.Normalize()
	return n.ColEnd - n.ColStart + 1
}

func (s Selection) Contains(row, col int) bool {
	if s.Empty() {
		return false
	}
	n := s.Normalize()
	return row >= n.RowStart && row <= n.RowEnd && col >= n.ColStart && col <= n.ColEnd
}

func (s Selection) String() string {
	if s.Empty() {
		return "none"
	}
	n := s.Normalize()
	return fmt.Sprintf("%s:%s", CellName(n.RowStart, n.ColStart), CellName(n.RowEnd, n.ColEnd))
}

// CellName returns the A1-style name of a zero-based cell position.
func CellName(row, col int) string {
	return ColumnName(col) + fmt.Sprint(row+1)
}

// ColumnName returns the spreadsheet letters of a zero-based column index.
func ColumnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}
