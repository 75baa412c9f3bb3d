package grid

import (
	"errors"
	"sync"
	"testing"

	"github.com/andareed/siftly-sheet/cellstyle"
)

func TestSelectionNormalize(t *testing.T) {
	got := Rect(3, 4, 1, 0).Normalize()
	want := Rect(1, 0, 3, 4)
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if r, c := Rect(3, 4, 1, 0).Rows(), Rect(3, 4, 1, 0).Cols(); r != 3 || c != 5 {
		t.Errorf("dims = %dx%d, want 3x5", r, c)
	}
}

func TestSelectionEmptyAndMulti(t *testing.T) {
	tests := []struct {
		name  string
		sel   Selection
		empty bool
		multi bool
	}{
		{"none", NoSelection, true, false},
		{"partial", Selection{0, 0, None, 2}, true, false},
		{"single", Single(2, 2), false, false},
		{"row", Rect(0, 0, 0, 3), false, true},
		{"reversed block", Rect(5, 5, 1, 1), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.sel.MultiCell(); got != tt.multi {
				t.Errorf("MultiCell() = %v, want %v", got, tt.multi)
			}
		})
	}
	if NoSelection.Rows() != 0 || NoSelection.Cols() != 0 {
		t.Error("empty selection should have zero area")
	}
}

func TestSelectionContainsAndString(t *testing.T) {
	sel := Rect(2, 2, 0, 0)
	if !sel.Contains(1, 1) || sel.Contains(3, 0) {
		t.Error("Contains is wrong")
	}
	if got := sel.String(); got != "A1:C3" {
		t.Errorf("String() = %q", got)
	}
	if got := NoSelection.String(); got != "none" {
		t.Errorf("String() = %q", got)
	}
}

func TestColumnName(t *testing.T) {
	for col, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		if got := ColumnName(col); got != want {
			t.Errorf("ColumnName(%d) = %q, want %q", col, got, want)
		}
	}
}

func TestResolveSelection(t *testing.T) {
	s := NewSheet(2, 2)
	s.SetValue(0, 0, "a")
	s.SetValue(1, 1, "d")

	block := s.ResolveSelection(Rect(1, 2, 0, 0))
	if len(block) != 2 || len(block[0]) != 3 || len(block[1]) != 3 {
		t.Fatalf("block dims wrong: %d rows", len(block))
	}
	if block[0][0] == nil || block[0][0].Value != "a" {
		t.Errorf("top-left = %+v", block[0][0])
	}
	if block[0][1] != nil {
		t.Errorf("unpopulated slot should be nil")
	}
	if block[1][1] == nil || block[1][1].Value != "d" {
		t.Errorf("block[1][1] = %+v", block[1][1])
	}
	if block[1][2] != nil {
		t.Errorf("out of range slot should be nil")
	}
	if s.ResolveSelection(NoSelection) != nil {
		t.Error("empty selection should resolve to nil")
	}
}

func TestEnsureGrows(t *testing.T) {
	s := NewSheet(1, 1)
	c := s.Ensure(3, 4)
	if c == nil {
		t.Fatal("Ensure returned nil")
	}
	if r, cols := s.Dims(); r != 4 || cols != 5 {
		t.Errorf("Dims() = %d,%d want 4,5", r, cols)
	}
	if s.Ensure(3, 4) != c {
		t.Error("Ensure should return the existing cell")
	}
	if s.Ensure(-1, 0) != nil {
		t.Error("negative Ensure should return nil")
	}
}

func TestSizeCap(t *testing.T) {
	s := NewSheet(MaxRows+10, MaxCols+10)
	if r, c := s.Dims(); r != MaxRows || c != MaxCols {
		t.Fatalf("NewSheet not clamped: %dx%d", r, c)
	}

	s = NewSheet(1, 1)
	err := s.Put(1048575, 16383, NewCell("far", cellstyle.Default()))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Put past the cap: err = %v, want ErrTooLarge", err)
	}
	if r, c := s.Dims(); r != 1 || c != 1 {
		t.Errorf("failed Put grew the sheet to %dx%d", r, c)
	}
	if s.Ensure(MaxRows, 0) != nil {
		t.Error("Ensure past the cap should return nil")
	}
	if err := s.Put(MaxRows-1, MaxCols-1, NewCell("corner", cellstyle.Default())); err != nil {
		t.Errorf("Put at the last slot: %v", err)
	}
	if err := CheckSize(MaxRows, MaxCols); err != nil {
		t.Errorf("CheckSize at the cap: %v", err)
	}
}

func TestSetValueCreatesCell(t *testing.T) {
	s := NewSheet(1, 1)
	s.SetValue(2, 1, "v")
	if c := s.Cell(2, 1); c == nil || c.Value != "v" {
		t.Fatalf("Cell(2,1) = %+v, want value v", c)
	}
	if r, c := s.Dims(); r != 3 || c != 2 {
		t.Errorf("Dims() = %d,%d want 3,2", r, c)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetValue(i, i, "x")
			s.Dims()
		}(i)
	}
	wg.Wait()
	if r, c := s.Dims(); r != 8 || c != 8 {
		t.Errorf("concurrent growth: Dims() = %d,%d want 8,8", r, c)
	}
}

func TestCellStyle(t *testing.T) {
	c := NewCell("x", cellstyle.Default())
	if !c.Style().IsDefault() {
		t.Fatal("new cell should be unformatted")
	}
	c.SetStyle(c.Style().WithBold(true))
	if !c.Style().Bold() {
		t.Error("SetStyle lost bold")
	}
}

func TestNotifyUpdated(t *testing.T) {
	s := NewSheet(1, 1)
	calls := 0
	s.OnUpdate(func() { calls++ })
	s.OnUpdate(func() { calls++ })
	s.NotifyUpdated()
	if calls != 2 {
		t.Errorf("listeners called %d times, want 2", calls)
	}
}
