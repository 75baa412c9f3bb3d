package format

import (
	"testing"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
)

// countingGrid wraps a sheet and counts update notifications.
type countingGrid struct {
	*grid.Sheet
	resolved int
	notified int
}

func (g *countingGrid) ResolveSelection(sel grid.Selection) [][]*grid.Cell {
	g.resolved++
	return g.Sheet.ResolveSelection(sel)
}

func (g *countingGrid) NotifyUpdated() {
	g.notified++
	g.Sheet.NotifyUpdated()
}

// newGrid builds a rows x cols sheet where every slot holds a cell and the
// cells listed in bold start out bold.
func newGrid(rows, cols int, bold ...[2]int) *countingGrid {
	s := grid.NewSheet(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.Ensure(r, c)
		}
	}
	for _, rc := range bold {
		cell := s.Cell(rc[0], rc[1])
		cell.SetStyle(cell.Style().WithBold(true))
	}
	return &countingGrid{Sheet: s}
}

func boldCount(g *countingGrid) int {
	n := 0
	for _, row := range g.All() {
		for _, c := range row {
			if c != nil && c.Style().Bold() {
				n++
			}
		}
	}
	return n
}

func TestSingleCellToggleAndRevert(t *testing.T) {
	g := newGrid(1, 1, [2]int{0, 0})
	e := NewEngine(g)

	if n := e.Apply(grid.Single(0, 0), Bold()); n != 1 {
		t.Fatalf("Apply wrote %d cells, want 1", n)
	}
	if g.Cell(0, 0).Style().Bold() {
		t.Fatal("bold cell should have been toggled off")
	}
	e.Apply(grid.Single(0, 0), Bold())
	if !g.Cell(0, 0).Style().Bold() {
		t.Fatal("second toggle should revert to bold")
	}
}

func TestMultiCellMajorityOn(t *testing.T) {
	g := newGrid(2, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	e := NewEngine(g)

	e.Apply(grid.Rect(0, 0, 1, 1), Bold())
	if n := boldCount(g); n != 0 {
		t.Errorf("after toggle %d cells bold, want 0", n)
	}
}

func TestMultiCellMajorityOff(t *testing.T) {
	g := newGrid(2, 2, [2]int{1, 1})
	e := NewEngine(g)

	e.Apply(grid.Rect(1, 1, 0, 0), Bold())
	if n := boldCount(g); n != 4 {
		t.Errorf("after toggle %d cells bold, want 4", n)
	}
}

func TestMultiCellTie(t *testing.T) {
	// 2 of 4 is not a majority, so the block becomes bold.
	g := newGrid(2, 2, [2]int{0, 0}, [2]int{1, 1})
	NewEngine(g).Apply(grid.Rect(0, 0, 1, 1), Bold())
	if n := boldCount(g); n != 4 {
		t.Errorf("after toggle %d cells bold, want 4", n)
	}
}

func TestItalicMajority(t *testing.T) {
	g := newGrid(1, 3)
	for c := 0; c < 2; c++ {
		cell := g.Cell(0, c)
		cell.SetStyle(cell.Style().WithItalic(true))
	}
	NewEngine(g).Apply(grid.Rect(0, 0, 0, 2), Italic())
	for c := 0; c < 3; c++ {
		if g.Cell(0, c).Style().Italic() {
			t.Errorf("cell %d still italic", c)
		}
	}
}

func TestToggleKeepsOtherAttributes(t *testing.T) {
	g := newGrid(1, 1)
	cell := g.Cell(0, 0)
	cell.SetStyle(cell.Style().WithTextColor(3).WithAlignment(cellstyle.Right))
	NewEngine(g).Apply(grid.Single(0, 0), Bold())

	st := cell.Style()
	if !st.Bold() || st.Alignment() != cellstyle.Right {
		t.Errorf("unexpected style %q", st)
	}
	if i, ok := st.TextColor(); !ok || i != 3 {
		t.Errorf("text colour lost: %d %v", i, ok)
	}
}

func TestUniformOverwriteSkipsEmptySlots(t *testing.T) {
	s := grid.NewSheet(3, 3)
	s.Ensure(0, 0).SetStyle(cellstyle.Default().WithAlignment(cellstyle.Right))
	s.Ensure(1, 2)
	s.Ensure(2, 1).SetStyle(cellstyle.Default().WithAlignment(cellstyle.Center))
	g := &countingGrid{Sheet: s}

	n := NewEngine(g).Apply(grid.Rect(0, 0, 2, 2), Align(cellstyle.Center))
	if n != 3 {
		t.Fatalf("Apply wrote %d cells, want 3", n)
	}
	for _, row := range s.All() {
		for _, c := range row {
			if c != nil && c.Style().Alignment() != cellstyle.Center {
				t.Errorf("cell not centred: %q", c.Style())
			}
		}
	}
	if s.Cell(1, 1) != nil {
		t.Error("empty slot was populated")
	}
}

func TestUniformSetIsIdempotent(t *testing.T) {
	g := newGrid(2, 3, [2]int{0, 1})
	e := NewEngine(g)
	sel := grid.Rect(0, 0, 1, 2)

	e.Apply(sel, Align(cellstyle.Right))
	once := make([]string, 0, 6)
	for _, row := range g.All() {
		for _, c := range row {
			once = append(once, c.Style().ToToken())
		}
	}

	e.Apply(sel, Align(cellstyle.Right))
	i := 0
	for _, row := range g.All() {
		for _, c := range row {
			if got := c.Style().ToToken(); got != once[i] {
				t.Errorf("cell %d: %q after second apply, %q after first", i, got, once[i])
			}
			i++
		}
	}
}

func TestSetActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{"text colour", TextColor(4), "$t04"},
		{"background", Background(12), "$b12"},
		{"font size", FontSize(18), "$s18"},
		{"paste", Paste(cellstyle.Default().WithBold(true).WithFontSize(9)), "$g$s09"},
		{"align left", Align(cellstyle.Left), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(2, 2)
			NewEngine(g).Apply(grid.Rect(0, 0, 1, 1), tt.action)
			for _, row := range g.All() {
				for _, c := range row {
					if got := c.Style().ToToken(); got != tt.want {
						t.Errorf("token = %q, want %q", got, tt.want)
					}
				}
			}
		})
	}
}

func TestClear(t *testing.T) {
	g := newGrid(1, 2, [2]int{0, 0}, [2]int{0, 1})
	NewEngine(g).Apply(grid.Rect(0, 0, 0, 1), Clear())
	if boldCount(g) != 0 {
		t.Error("Clear left bold cells")
	}
}

func TestEmptySelectionIsNoop(t *testing.T) {
	g := newGrid(2, 2, [2]int{0, 0})
	e := NewEngine(g)

	called := false
	n := e.ApplyFunc(grid.NoSelection, func(s cellstyle.Style, _ bool, _ any) cellstyle.Style {
		called = true
		return s.WithBold(false)
	}, nil)

	if n != 0 || called {
		t.Error("changer ran on an empty selection")
	}
	if g.resolved != 0 || g.notified != 0 {
		t.Errorf("resolved=%d notified=%d, want 0 and 0", g.resolved, g.notified)
	}
	if !g.Cell(0, 0).Style().Bold() {
		t.Error("cell was mutated")
	}
}

func TestSingleNotificationPerApply(t *testing.T) {
	g := newGrid(3, 3)
	redraws := 0
	g.OnUpdate(func() { redraws++ })

	NewEngine(g).Apply(grid.Rect(0, 0, 2, 2), FontSize(11))
	if g.notified != 1 || redraws != 1 {
		t.Errorf("notified=%d redraws=%d, want 1 and 1", g.notified, redraws)
	}
}

func TestAggregateBeforeWrite(t *testing.T) {
	g := newGrid(2, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	var events []string

	agg := func(block [][]*grid.Cell) any {
		events = append(events, "aggregate")
		return Majority(block, cellstyle.Style.Bold)
	}
	change := func(s cellstyle.Style, multi bool, aggregate any) cellstyle.Style {
		events = append(events, "write")
		if !multi {
			t.Error("expected multi-cell")
		}
		if aggregate != true {
			t.Errorf("aggregate = %v, want true", aggregate)
		}
		return s.WithBold(!aggregate.(bool))
	}

	n := NewEngine(g).ApplyFunc(grid.Rect(0, 0, 1, 1), change, agg)
	if n != 4 {
		t.Fatalf("wrote %d cells", n)
	}
	if len(events) != 5 || events[0] != "aggregate" {
		t.Errorf("events = %v, want aggregate then 4 writes", events)
	}
	for _, ev := range events[1:] {
		if ev != "write" {
			t.Errorf("aggregate ran more than once: %v", events)
		}
	}
}

func TestNilAggregator(t *testing.T) {
	g := newGrid(1, 1)
	NewEngine(g).ApplyFunc(grid.Single(0, 0), func(s cellstyle.Style, multi bool, aggregate any) cellstyle.Style {
		if aggregate != nil {
			t.Errorf("aggregate = %v, want nil", aggregate)
		}
		if multi {
			t.Error("single cell reported as multi")
		}
		return s
	}, nil)
}

func TestMajority(t *testing.T) {
	bold := grid.NewCell("", cellstyle.Default().WithBold(true))
	plain := grid.NewCell("", cellstyle.Default())

	tests := []struct {
		name  string
		block [][]*grid.Cell
		want  bool
	}{
		{"nil block", nil, false},
		{"zero columns", [][]*grid.Cell{{}}, false},
		{"3 of 4", [][]*grid.Cell{{bold, bold}, {bold, plain}}, true},
		{"1 of 4", [][]*grid.Cell{{bold, plain}, {plain, plain}}, false},
		{"2 of 4", [][]*grid.Cell{{bold, plain}, {plain, bold}}, false},
		{"empty slots count", [][]*grid.Cell{{bold, nil, nil}}, false},
		{"2 of 3", [][]*grid.Cell{{bold, bold, nil}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Majority(tt.block, cellstyle.Style.Bold); got != tt.want {
				t.Errorf("Majority() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Bold(), "bold"},
		{Align(cellstyle.Center), "align=center"},
		{TextColor(2), "text-color=2"},
		{FontSize(10), "font-size=10"},
		{Paste(cellstyle.Default()), `paste=""`},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
