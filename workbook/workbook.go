// Package workbook ties a sheet to its colour palette and persists both.
package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/palette"
)

// Workbook is a single sheet plus the palette its styles index into.
type Workbook struct {
	Palette *palette.Palette
	Sheet   *grid.Sheet
}

func New(rows, cols int) *Workbook {
	p, _ := palette.New()
	return &Workbook{Palette: p, Sheet: grid.NewSheet(rows, cols)}
}

// Lookup is the colour lookup cells render against.
func (w *Workbook) Lookup() cellstyle.ColorLookup { return w.Palette }

// Importer loads a workbook from a file with a given extension.
type Importer func(path string) (*Workbook, error)

var importers = map[string]Importer{
	".json": Load,
	".csv":  LoadCSV,
}

// RegisterImporter adds support for another file extension (".xlsx" is
// registered by the xlsx package).
func RegisterImporter(ext string, fn Importer) {
	importers[strings.ToLower(ext)] = fn
}

// Open loads path with the importer registered for its extension.
func Open(path string) (*Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := importers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
	return fn(path)
}
