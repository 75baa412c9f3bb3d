// Package grid stores the cells of a sheet and resolves rectangular
// selections into blocks of cell handles.
package grid

import (
	"errors"
	"fmt"
	"sync"

	"github.com/andareed/siftly-sheet/cellstyle"
)

// Cell is a handle on one populated slot of a sheet.
type Cell struct {
	Value string
	style cellstyle.Style
}

func NewCell(value string, style cellstyle.Style) *Cell {
	return &Cell{Value: value, style: style}
}

// Style returns the cell's style; an unformatted cell has the default style.
func (c *Cell) Style() cellstyle.Style { return c.style }

func (c *Cell) SetStyle(s cellstyle.Style) { c.style = s }

// Every slot is allocated up front, so sheets are capped well below the
// xlsx limits (1048576x16384).
const (
	MaxRows = 65536
	MaxCols = 256
)

var ErrTooLarge = errors.New("sheet too large")

// CheckSize reports an error wrapping ErrTooLarge when rows x cols exceeds
// MaxRows x MaxCols.
func CheckSize(rows, cols int) error {
	if rows > MaxRows || cols > MaxCols {
		return fmt.Errorf("sheet %dx%d exceeds %dx%d: %w", rows, cols, MaxRows, MaxCols, ErrTooLarge)
	}
	return nil
}

// Sheet is a rectangular block of slots. A slot is nil until a cell is
// created in it.
//
// The mutex guards the slot layout only. Cell values and styles are not
// synchronized: the editor touches them from its update loop and the format
// engine serializes its own writes.
type Sheet struct {
	mu        sync.RWMutex
	cells     [][]*Cell
	cols      int
	listeners []func()
}

// NewSheet allocates rows x cols slots, clamped to MaxRows x MaxCols.
func NewSheet(rows, cols int) *Sheet {
	s := &Sheet{}
	s.grow(rows, cols)
	return s
}

// Dims returns the number of rows and columns.
func (s *Sheet) Dims() (rows, cols int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells), s.cols
}

// Grow extends the sheet to at least rows x cols, clamped to MaxRows x
// MaxCols. It never shrinks.
func (s *Sheet) Grow(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grow(rows, cols)
}

func (s *Sheet) grow(rows, cols int) {
	rows, cols = min(rows, MaxRows), min(cols, MaxCols)
	if cols > s.cols {
		for i := range s.cells {
			s.cells[i] = append(s.cells[i], make([]*Cell, cols-s.cols)...)
		}
		s.cols = cols
	}
	for len(s.cells) < rows {
		s.cells = append(s.cells, make([]*Cell, s.cols))
	}
}

// Cell returns the cell at row, col or nil for an empty or out of range slot.
func (s *Sheet) Cell(row, col int) *Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.at(row, col)
}

func (s *Sheet) at(row, col int) *Cell {
	if row < 0 || col < 0 || row >= len(s.cells) || col >= s.cols {
		return nil
	}
	return s.cells[row][col]
}

// Ensure returns the cell at row, col, creating it (and growing the sheet)
// when the slot is empty. Negative positions and positions past the size cap
// return nil.
func (s *Sheet) Ensure(row, col int) *Cell {
	if row < 0 || col < 0 || row >= MaxRows || col >= MaxCols {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grow(row+1, col+1)
	if s.cells[row][col] == nil {
		s.cells[row][col] = &Cell{}
	}
	return s.cells[row][col]
}

// Put stores c at row, col, growing the sheet as needed. A nil c empties the
// slot. Negative positions are ignored; positions past the size cap are an
// error wrapping ErrTooLarge and leave the sheet unchanged.
func (s *Sheet) Put(row, col int, c *Cell) error {
	if row < 0 || col < 0 {
		return nil
	}
	if err := CheckSize(row+1, col+1); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grow(row+1, col+1)
	s.cells[row][col] = c
	return nil
}

func (s *Sheet) SetValue(row, col int, value string) {
	if c := s.Ensure(row, col); c != nil {
		c.Value = value
	}
}

// ResolveSelection returns the block addressed by sel, row by row. The block
// always has sel's dimensions; slots outside the sheet or never populated are
// nil. An empty selection resolves to nil.
func (s *Sheet) ResolveSelection(sel Selection) [][]*Cell {
	if sel.Empty() {
		return nil
	}
	n := sel.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()
	block := make([][]*Cell, 0, n.RowEnd-n.RowStart+1)
	for r := n.RowStart; r <= n.RowEnd; r++ {
		row := make([]*Cell, 0, n.ColEnd-n.ColStart+1)
		for c := n.ColStart; c <= n.ColEnd; c++ {
			row = append(row, s.at(r, c))
		}
		block = append(block, row)
	}
	return block
}

// All resolves the whole sheet.
func (s *Sheet) All() [][]*Cell {
	rows, cols := s.Dims()
	if rows == 0 || cols == 0 {
		return nil
	}
	return s.ResolveSelection(Rect(0, 0, rows-1, cols-1))
}

// OnUpdate registers fn to run on every NotifyUpdated.
func (s *Sheet) OnUpdate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// NotifyUpdated tells listeners the sheet needs to be redrawn.
func (s *Sheet) NotifyUpdated() {
	s.mu.RLock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}
