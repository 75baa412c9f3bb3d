package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
)

// tokens flattens a sheet into value/token pairs for comparison.
func tokens(s *grid.Sheet) [][]string {
	var out [][]string
	for _, row := range s.All() {
		var line []string
		for _, c := range row {
			if c == nil {
				line = append(line, "<nil>")
				continue
			}
			line = append(line, c.Value+"|"+c.Style().ToToken())
		}
		out = append(out, line)
	}
	return out
}

func sample(t *testing.T) *Workbook {
	t.Helper()
	w := New(2, 3)
	red, err := w.Palette.Add("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	blue, _ := w.Palette.Add("#0000ff")

	w.Sheet.Put(0, 0, grid.NewCell("name", cellstyle.Default().WithBold(true).WithAlignment(cellstyle.Center)))
	w.Sheet.Put(0, 2, grid.NewCell("qty", cellstyle.Default().WithTextColor(red).WithFontSize(14)))
	w.Sheet.Put(1, 1, grid.NewCell("", cellstyle.Default().WithBackgroundColor(blue).WithItalic(true)))
	return w
}

func TestSaveLoadRoundTrip(t *testing.T) {
	w := sample(t)
	path := filepath.Join(t.TempDir(), "book.json")
	if err := Save(w, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(w.Palette.Colors(), got.Palette.Colors()); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tokens(w.Sheet), tokens(got.Sheet)); diff != "" {
		t.Errorf("sheet mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedTokenFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	body := `{"version":1,"palette":["#112233"],"cols":2,"rows":[[{"value":"a","style":"$x99"},{"value":"b","style":"$g"}]]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st := w.Sheet.Cell(0, 0).Style(); !st.IsDefault() {
		t.Errorf("malformed token should fall back to default, got %q", st)
	}
	if !w.Sheet.Cell(0, 1).Style().Bold() {
		t.Error("valid token was not applied")
	}
}

func TestLoadRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v2.json")
	if err := os.WriteFile(path, []byte(`{"version":2}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "version") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestLoadRejectsDuplicatePalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	body := `{"version":1,"palette":["#ff0000","#FF0000"],"rows":[]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected duplicate palette error")
	}
}

func TestLoadRejectsOversizedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.json")
	body := `{"version":1,"palette":[],"cols":100000000,"rows":[[{"value":"a"}]]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, grid.ErrTooLarge) {
		t.Fatalf("Load: err = %v, want ErrTooLarge", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	w := sample(t)
	path := filepath.Join(t.TempDir(), "book.csv")
	if err := ExportCSV(w, path); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "A,B,C,Styles" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "name,,qty,$c$g||$t00$s14" {
		t.Errorf("row 1 = %q", lines[1])
	}

	got, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if diff := cmp.Diff(tokens(w.Sheet), tokens(got.Sheet)); diff != "" {
		t.Errorf("sheet mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlainCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.csv")
	if err := os.WriteFile(path, []byte("a,b\nc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if rows, cols := w.Sheet.Dims(); rows != 2 || cols != 2 {
		t.Fatalf("Dims() = %d,%d", rows, cols)
	}
	if c := w.Sheet.Cell(1, 0); c == nil || c.Value != "c" || !c.Style().IsDefault() {
		t.Errorf("cell(1,0) = %+v", c)
	}
	if w.Sheet.Cell(1, 1) != nil {
		t.Error("missing field should be an empty slot")
	}
}

func TestOpenUnsupported(t *testing.T) {
	if _, err := Open("book.ods"); err == nil {
		t.Fatal("expected unsupported extension error")
	}
}
