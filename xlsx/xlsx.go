// Package xlsx moves styled sheets in and out of Excel workbooks.
package xlsx

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
	"github.com/andareed/siftly-sheet/palette"
	"github.com/andareed/siftly-sheet/workbook"
)

func init() {
	workbook.RegisterImporter(".xlsx", ImportFile)
}

// --- Export ---

// Export writes the workbook's sheet as the first worksheet of a new xlsx
// file. Cells sharing a style token share one cell format.
func Export(wr io.Writer, w *workbook.Workbook) error {
	ss := build(w)
	if err := ss.Save(wr); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func ExportFile(path string, w *workbook.Workbook) error {
	ss := build(w)
	if err := ss.SaveToFile(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	logging.Infof("xlsx: exported to %s", path)
	return nil
}

func build(w *workbook.Workbook) *spreadsheet.Workbook {
	ss := spreadsheet.New()
	sheet := ss.AddSheet()
	formats := make(map[string]spreadsheet.CellStyle)

	for _, row := range w.Sheet.All() {
		xr := sheet.AddRow()
		for c, cell := range row {
			if cell == nil {
				continue
			}
			xc := xr.Cell(grid.ColumnName(c))
			xc.SetString(cell.Value)

			st := cell.Style()
			if st.IsDefault() {
				continue
			}
			tok := st.ToToken()
			cs, ok := formats[tok]
			if !ok {
				cs = cellFormat(ss, st, w.Palette)
				formats[tok] = cs
			}
			xc.SetStyle(cs)
		}
	}
	logging.Debugf("xlsx: built sheet with %d distinct formats", len(formats))
	return ss
}

// cellFormat registers the unioffice equivalent of st in the stylesheet.
func cellFormat(ss *spreadsheet.Workbook, st cellstyle.Style, lookup cellstyle.ColorLookup) spreadsheet.CellStyle {
	cs := ss.StyleSheet.AddCellStyle()

	switch st.Alignment() {
	case cellstyle.Center:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentCenter)
	case cellstyle.Right:
		cs.SetHorizontalAlignment(sml.ST_HorizontalAlignmentRight)
	}

	text, hasText := resolveHex(lookup, st.TextColor)
	size, hasSize := st.FontSize()
	if st.Bold() || st.Italic() || hasText || hasSize {
		font := ss.StyleSheet.AddFont()
		font.SetBold(st.Bold())
		font.SetItalic(st.Italic())
		if hasSize {
			font.SetSize(float64(size))
		}
		if hasText {
			font.SetColor(color.FromHex(text))
		}
		cs.SetFont(font)
	}

	if bg, ok := resolveHex(lookup, st.BackgroundColor); ok {
		fill := ss.StyleSheet.Fills().AddFill()
		pf := fill.SetPatternFill()
		pf.SetPattern(sml.ST_PatternTypeSolid)
		pf.SetFgColor(color.FromHex(bg))
		cs.SetFill(fill)
	}
	return cs
}

func resolveHex(lookup cellstyle.ColorLookup, ref func() (int, bool)) (string, bool) {
	i, ok := ref()
	if !ok || lookup == nil {
		return "", false
	}
	c, ok := lookup.Color(i)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(c, "#"), true
}

// --- Import ---

// Import reads the first worksheet. Colours found in fonts and fills are
// added to the new workbook's palette.
func Import(r io.ReaderAt, size int64) (*workbook.Workbook, error) {
	ss, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	return fromSpreadsheet(ss)
}

func ImportFile(path string) (*workbook.Workbook, error) {
	ss, err := spreadsheet.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	return fromSpreadsheet(ss)
}

func fromSpreadsheet(ss *spreadsheet.Workbook) (*workbook.Workbook, error) {
	w := workbook.New(0, 0)
	sheets := ss.Sheets()
	if len(sheets) == 0 {
		return w, nil
	}
	sheet := sheets[0]

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			st := importStyle(ss.StyleSheet, cell, w.Palette)
			value := cell.GetFormattedValue()
			if value == "" && st.IsDefault() {
				continue
			}
			if err := w.Sheet.Put(rowIdx, colIdx, grid.NewCell(value, st)); err != nil {
				return nil, fmt.Errorf("cell %s%d: %w", colName, rowIdx+1, err)
			}
		}
	}
	rows, cols := w.Sheet.Dims()
	logging.Infof("xlsx: imported %dx%d cells from sheet %q", rows, cols, sheet.Name())
	return w, nil
}

func importStyle(ss spreadsheet.StyleSheet, cell spreadsheet.Cell, p *palette.Palette) cellstyle.Style {
	st := cellstyle.Default()
	if cell.X().SAttr == nil {
		return st
	}
	styleID := *cell.X().SAttr
	if ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return st
	}
	xf := ss.X().CellXfs.Xf[styleID]

	if font := fontProps(ss, xf); font != nil {
		st = st.WithBold(isSet(font.B)).WithItalic(isSet(font.I))
		if len(font.Sz) > 0 {
			st = st.WithFontSize(int(math.Round(font.Sz[0].ValAttr)))
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			if idx, ok := addColor(p, *font.Color[0].RgbAttr); ok {
				st = st.WithTextColor(idx)
			}
		}
	}
	if fill := fillProps(ss, xf); fill != nil && fill.PatternFill != nil && fill.PatternFill.FgColor != nil {
		if fg := fill.PatternFill.FgColor; fg.RgbAttr != nil {
			if idx, ok := addColor(p, *fg.RgbAttr); ok {
				st = st.WithBackgroundColor(idx)
			}
		}
	}
	if xf.Alignment != nil {
		st = st.WithAlignment(cellstyle.ParseAlignment(xf.Alignment.HorizontalAttr.String()))
	}
	return st
}

func fontProps(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Font {
	if xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	i := int(*xf.FontIdAttr)
	if i < 0 || i >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[i]
}

func fillProps(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Fill {
	if xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	i := int(*xf.FillIdAttr)
	if i < 0 || i >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[i]
}

func isSet(props []*sml.CT_BooleanProperty) bool {
	return len(props) > 0 && (props[0].ValAttr == nil || *props[0].ValAttr)
}

func addColor(p *palette.Palette, rgb string) (int, bool) {
	idx, err := p.Add(normalizeColor(rgb))
	if err != nil {
		logging.Warnf("xlsx: skipping colour %q: %v", rgb, err)
		return 0, false
	}
	return idx, true
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
