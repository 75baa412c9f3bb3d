package workbook

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
	"github.com/andareed/siftly-sheet/palette"
)

// --- Wire format ---

const snapshotVersion = 1

// stylesColumn is the trailing CSV column holding each row's style tokens.
const stylesColumn = "Styles"

type cellDTO struct {
	Value string `json:"value,omitempty"`
	Style string `json:"style,omitempty"`
}

type snapshotDTO struct {
	Version int          `json:"version"`
	Palette []string     `json:"palette"`
	Cols    int          `json:"cols"`
	Rows    [][]*cellDTO `json:"rows"` // nil entries are empty slots
}

// --- Conversions ---

func toDTOCell(c *grid.Cell) *cellDTO {
	if c == nil {
		return nil
	}
	return &cellDTO{Value: c.Value, Style: c.Style().ToToken()}
}

// fromDTOCell never fails: a corrupt style token degrades to the default style.
func fromDTOCell(d *cellDTO) *grid.Cell {
	if d == nil {
		return nil
	}
	return grid.NewCell(d.Value, cellstyle.ParseOrDefault(d.Style))
}

// --- Public API ---

// Save writes the whole workbook to a JSON file.
func Save(w *Workbook, path string) error {
	rows, cols := w.Sheet.Dims()
	dto := snapshotDTO{
		Version: snapshotVersion,
		Palette: w.Palette.Colors(),
		Cols:    cols,
		Rows:    make([][]*cellDTO, 0, rows),
	}
	for _, row := range w.Sheet.All() {
		out := make([]*cellDTO, len(row))
		for i, c := range row {
			out[i] = toDTOCell(c)
		}
		dto.Rows = append(dto.Rows, out)
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	logging.Infof("workbook: saving %dx%d sheet, %d colours to %s", rows, cols, len(dto.Palette), path)
	return os.WriteFile(path, data, 0o600)
}

// Load reads a workbook written by Save. Palette order is preserved so the
// indices stored in style tokens still point at the same colours.
func Load(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}

	p, err := restorePalette(dto.Palette)
	if err != nil {
		return nil, err
	}

	cols := dto.Cols
	for _, r := range dto.Rows {
		cols = max(cols, len(r))
	}
	if err := grid.CheckSize(len(dto.Rows), cols); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	sheet := grid.NewSheet(len(dto.Rows), cols)
	for r, row := range dto.Rows {
		for c, d := range row {
			if cell := fromDTOCell(d); cell != nil {
				sheet.Put(r, c, cell)
			}
		}
	}
	return &Workbook{Palette: p, Sheet: sheet}, nil
}

// restorePalette re-adds colours in order. A colour that normalizes to an
// earlier entry would shift every later index, so that is an error.
func restorePalette(colors []string) (*palette.Palette, error) {
	p, _ := palette.New()
	for i, c := range colors {
		idx, err := p.Add(c)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		if idx != i {
			return nil, fmt.Errorf("palette entry %d (%s) duplicates entry %d", i, c, idx)
		}
	}
	return p, nil
}

// LoadCSV builds a workbook from CSV values. When the last header column is
// "Styles" (as written by ExportCSV) it is split back into per-cell tokens.
func LoadCSV(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no rows", path)
	}

	withStyles := false
	if hdr := records[0]; len(hdr) > 0 && hdr[len(hdr)-1] == stylesColumn {
		withStyles = true
		records = records[1:]
	}

	cols := 0
	for _, rec := range records {
		n := len(rec)
		if withStyles && n > 0 {
			n--
		}
		cols = max(cols, n)
	}

	if err := grid.CheckSize(len(records), cols); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	w := New(len(records), cols)
	for r, rec := range records {
		var tokens []string
		if withStyles && len(rec) > 0 {
			tokens = strings.Split(rec[len(rec)-1], "|")
			rec = rec[:len(rec)-1]
		}
		for c, v := range rec {
			st := cellstyle.Default()
			if c < len(tokens) {
				st = cellstyle.ParseOrDefault(tokens[c])
			}
			if v == "" && st.IsDefault() {
				continue
			}
			w.Sheet.Put(r, c, grid.NewCell(v, st))
		}
	}
	logging.Infof("workbook: loaded %d CSV rows from %s (styles=%v)", len(records), path, withStyles)
	return w, nil
}

// ExportCSV writes cell values plus a trailing Styles column holding the
// row's tokens joined by "|". Colour indices are only meaningful together
// with the palette, which CSV cannot carry; use Save for lossless storage.
func ExportCSV(w *Workbook, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	_, cols := w.Sheet.Dims()
	header := make([]string, 0, cols+1)
	for c := 0; c < cols; c++ {
		header = append(header, grid.ColumnName(c))
	}
	header = append(header, stylesColumn)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for r, row := range w.Sheet.All() {
		out := make([]string, 0, len(row)+1)
		tokens := make([]string, len(row))
		for c, cell := range row {
			if cell == nil {
				out = append(out, "")
				continue
			}
			out = append(out, cell.Value)
			tokens[c] = cell.Style().ToToken()
		}
		out = append(out, strings.Join(tokens, "|"))
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
