// Package format applies formatting actions to a rectangular selection of
// cells.
//
// Toggles (bold, italic) follow a majority rule: on a single cell they flip
// the cell's own value, on a block they make the whole block the opposite of
// whatever state more than half of it currently holds. Every other action
// overwrites the same value on every populated cell.
package format

import (
	"sync"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
)

// Grid resolves selections into blocks of cells and redraws after a change.
// *grid.Sheet implements it.
type Grid interface {
	ResolveSelection(sel grid.Selection) [][]*grid.Cell
	NotifyUpdated()
}

// StyleChanger computes a cell's new style from its current one, whether
// the selection spans several cells and the value returned by the Aggregator.
type StyleChanger func(current cellstyle.Style, multi bool, aggregate any) cellstyle.Style

// Aggregator summarises the selected block before any cell is written.
type Aggregator func(block [][]*grid.Cell) any

// Engine serialises formatting calls against one grid so the aggregate read
// of one call can never interleave with the writes of another.
type Engine struct {
	mu   sync.Mutex
	grid Grid
}

func NewEngine(g Grid) *Engine {
	return &Engine{grid: g}
}

// Apply runs a formatting action over sel and returns the number of cells
// written.
func (e *Engine) Apply(sel grid.Selection, a Action) int {
	var agg Aggregator
	if a.usesMajority() {
		agg = a.aggregate
	}
	logging.Debugf("format: %s on %s", a, sel)
	return e.ApplyFunc(sel, a.apply, agg)
}

// ApplyFunc is the general form of Apply. agg may be nil, in which case
// change receives a nil aggregate.
//
// An empty selection is a no-op: nothing is resolved, written or notified.
// Otherwise the aggregate is computed over the whole block first, then
// every populated slot is rewritten, then the grid is notified once.
func (e *Engine) ApplyFunc(sel grid.Selection, change StyleChanger, agg Aggregator) int {
	if sel.Empty() {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	multi := sel.MultiCell()
	block := e.grid.ResolveSelection(sel)

	var aggregate any
	if agg != nil {
		aggregate = agg(block)
	}

	written := 0
	for _, row := range block {
		for _, cell := range row {
			if cell == nil {
				continue
			}
			cell.SetStyle(change(cell.Style(), multi, aggregate))
			written++
		}
	}

	e.grid.NotifyUpdated()
	return written
}

// Majority reports whether more than half of the block's slots hold a cell
// whose style satisfies pred. Empty slots count towards the block size but
// never satisfy pred. A block with no rows or columns has no majority.
func Majority(block [][]*grid.Cell, pred func(cellstyle.Style) bool) bool {
	if len(block) == 0 || len(block[0]) == 0 {
		return false
	}
	total := len(block) * len(block[0])
	count := 0
	for _, row := range block {
		for _, cell := range row {
			if cell != nil && pred(cell.Style()) {
				count++
			}
		}
	}
	return float64(count)/float64(total) > 0.5
}

// Toggle flips the attribute read by get: on a single cell relative to that
// cell, on a block to the opposite of the block's majority.
func Toggle(current cellstyle.Style, multi, majority bool, get func(cellstyle.Style) bool, set func(cellstyle.Style, bool) cellstyle.Style) cellstyle.Style {
	if multi {
		return set(current, !majority)
	}
	return set(current, !get(current))
}
