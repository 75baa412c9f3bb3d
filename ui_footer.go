package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-sheet/grid"
)

type FooterState struct {
	Mode string

	FileName string
	Modified bool

	Selection string
	Token     string

	Cell       string
	Rows, Cols int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// footerView renders the 2-line footer for the current cursor and selection.
func (m *model) footerView(width int) string {
	rows, cols := m.book.Sheet.Dims()
	sel := m.selection()

	st := FooterState{
		Mode:      "NORMAL",
		FileName:  m.path,
		Modified:  m.modified,
		Selection: sel.String(),
		Token:     m.cursorStyle().ToToken(),
		Cell:      grid.CellName(m.cursorRow, m.cursorCol),
		Rows:      rows,
		Cols:      cols,
		Legend:    "(? help · b/i bold/italic · </|/> align · t/g colour · y/p copy/paste format)",
	}
	if sel.MultiCell() {
		st.Mode = "SELECT"
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	rightPlain := fmt.Sprintf(" %s  %dx%d ", st.Cell, st.Rows, st.Cols)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := textWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := min(textWidth(st.Mode)+2, leftW)
	styleColW := min(textWidth(styleSegmentText(st)), max(0, leftW-modeColW-gapW))
	fileColW := max(0, leftW-modeColW-styleColW-2*gapW)

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	styleSeg := renderStyleSegment(styleColW, st, styles)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + styleSeg
	leftWActual := modeColW + fileColW + styleColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := textWidth(legendPlain)

	leftW := max(0, width-legendW)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-textWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(new sheet)"
	} else {
		name = filepath.Base(name)
	}
	if st.Modified {
		name += " [+]"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	return applyFG(padRightPlain(filePlain, colW), styles.FileNameFG, styles.TextFG)
}

func styleSegmentText(st FooterState) string {
	token := st.Token
	if token == "" {
		token = "default"
	}
	return fmt.Sprintf("[SEL: %s] · [STYLE: %s]", st.Selection, token)
}

func renderStyleSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	plain := padRightPlain(truncatePlain(styleSegmentText(st), colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func ansiBg(c lipgloss.Color) string {
	return colorSeq(c, true)
}

// colorSeq degrades c to the terminal's colour profile.
func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := textWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
