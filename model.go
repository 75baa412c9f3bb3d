package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/clipboard"
	"github.com/andareed/siftly-sheet/dialogs"
	"github.com/andareed/siftly-sheet/format"
	"github.com/andareed/siftly-sheet/grid"
	"github.com/andareed/siftly-sheet/logging"
	"github.com/andareed/siftly-sheet/workbook"
)

type mode int

const (
	modeView mode = iota
	modeDialog
)

type model struct {
	book   *workbook.Workbook
	engine *format.Engine
	cfg    config

	// selection runs from the anchor to the cursor; they are equal when
	// only one cell is selected
	cursorRow, cursorCol int
	anchorRow, anchorCol int

	// needsRedraw is raised by the sheet's update listener
	needsRedraw bool
	modified    bool

	// copied holds the last copied token for when the system clipboard
	// cannot be read back
	copied    string
	hasCopied bool
	copyText  func(string) error
	pasteText func() (string, error)

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int
	activeDialog   dialogs.Dialog

	path    string
	lastDir string
	ui      uiState
}

func newModel(book *workbook.Workbook, path string, cfg config) *model {
	m := &model{
		book:   book,
		engine: format.NewEngine(book.Sheet),
		cfg:    cfg,
		path:   path,

		copyText:  clipboard.Copy,
		pasteText: clipboard.Paste,
	}
	if path != "" {
		m.lastDir = filepath.Dir(path)
	}
	book.Sheet.OnUpdate(func() {
		m.needsRedraw = true
		m.modified = true
	})
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-sheet: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.viewport = viewport.New(max(0, msg.Width-6), max(0, msg.Height-6))
		m.ready = true
		m.needsRedraw = true

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}

	case dialogs.PromptConfirmedMsg:
		m.closeDialog()
		cmd = m.handlePrompt(msg)

	case dialogs.PromptCanceledMsg:
		logging.Debugf("prompt %d cancelled", msg.Purpose)
		m.closeDialog()

	case tea.KeyMsg:
		if m.ui.mode == modeDialog && m.activeDialog != nil {
			_, cmd = m.activeDialog.Update(msg)
			if !m.activeDialog.IsVisible() {
				m.closeDialog()
			}
			break
		}
		return m.handleViewModeKey(msg)

	default:
		if m.ui.mode == modeDialog && m.activeDialog != nil {
			_, cmd = m.activeDialog.Update(msg)
		}
	}
	m.refresh()
	return m, cmd
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.ExtendUp):
		m.moveCursor(-1, 0, true)
	case key.Matches(msg, Keys.ExtendDown):
		m.moveCursor(1, 0, true)
	case key.Matches(msg, Keys.ExtendLeft):
		m.moveCursor(0, -1, true)
	case key.Matches(msg, Keys.ExtendRight):
		m.moveCursor(0, 1, true)
	case key.Matches(msg, Keys.Up):
		m.moveCursor(-1, 0, false)
	case key.Matches(msg, Keys.Down):
		m.moveCursor(1, 0, false)
	case key.Matches(msg, Keys.Left):
		m.moveCursor(0, -1, false)
	case key.Matches(msg, Keys.Right):
		m.moveCursor(0, 1, false)
	case key.Matches(msg, Keys.Collapse):
		m.anchorRow, m.anchorCol = m.cursorRow, m.cursorCol
		m.needsRedraw = true
	case key.Matches(msg, Keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpEnd):
		m.jumpToEnd()
	case key.Matches(msg, Keys.Jump):
		cmd = m.openPrompt(dialogs.PromptJump, "")
	case key.Matches(msg, Keys.Search):
		cmd = m.openPrompt(dialogs.PromptSearch, m.ui.searchQuery)
	case key.Matches(msg, Keys.SearchNext):
		cmd = m.searchNext(m.ui.searchQuery)

	case key.Matches(msg, Keys.Bold):
		m.apply(format.Bold())
	case key.Matches(msg, Keys.Italic):
		m.apply(format.Italic())
	case key.Matches(msg, Keys.AlignLeft):
		m.apply(format.Align(cellstyle.Left))
	case key.Matches(msg, Keys.AlignCenter):
		m.apply(format.Align(cellstyle.Center))
	case key.Matches(msg, Keys.AlignRight):
		m.apply(format.Align(cellstyle.Right))
	case key.Matches(msg, Keys.ClearFormat):
		m.apply(format.Clear())

	case key.Matches(msg, Keys.TextColor):
		cmd = m.openPrompt(dialogs.PromptTextColor, m.cfg.textColor)
	case key.Matches(msg, Keys.Background):
		cmd = m.openPrompt(dialogs.PromptBackground, m.cfg.bgColor)
	case key.Matches(msg, Keys.FontSize):
		size := m.cfg.fontSize
		if n, ok := m.cursorStyle().FontSize(); ok {
			size = n
		}
		cmd = m.openPrompt(dialogs.PromptFontSize, strconv.Itoa(size))
	case key.Matches(msg, Keys.EditValue):
		value := ""
		if c := m.book.Sheet.Cell(m.cursorRow, m.cursorCol); c != nil {
			value = c.Value
		}
		cmd = m.openPrompt(dialogs.PromptValue, value)
	case key.Matches(msg, Keys.SaveToFile):
		cmd = m.openPrompt(dialogs.PromptSave, defaultSaveName(m.path, ".json"))
	case key.Matches(msg, Keys.ExportFile):
		cmd = m.openPrompt(dialogs.PromptExport, defaultSaveName(m.path, ".xlsx"))

	case key.Matches(msg, Keys.CopyFormat):
		cmd = m.copyFormat()
	case key.Matches(msg, Keys.PasteFormat):
		cmd = m.pasteFormat()

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		m.ui.mode = modeDialog
	}

	m.refresh()
	return m, cmd
}

// selection is the block between the anchor and the cursor.
func (m *model) selection() grid.Selection {
	return grid.Rect(m.anchorRow, m.anchorCol, m.cursorRow, m.cursorCol)
}

func (m *model) moveCursor(dr, dc int, extend bool) {
	rows, cols := m.book.Sheet.Dims()
	m.cursorRow = clamp(m.cursorRow+dr, 0, max(0, rows-1))
	m.cursorCol = clamp(m.cursorCol+dc, 0, max(0, cols-1))
	if !extend {
		m.anchorRow, m.anchorCol = m.cursorRow, m.cursorCol
	}
	m.needsRedraw = true
}

func (m *model) cursorStyle() cellstyle.Style {
	if c := m.book.Sheet.Cell(m.cursorRow, m.cursorCol); c != nil {
		return c.Style()
	}
	return cellstyle.Default()
}

// apply runs a formatting action over the current selection. Empty slots
// are created first so a fresh sheet can be formatted before it is filled.
func (m *model) apply(a format.Action) int {
	sel := m.selection().Normalize()
	for r := sel.RowStart; r <= sel.RowEnd; r++ {
		for c := sel.ColStart; c <= sel.ColEnd; c++ {
			m.book.Sheet.Ensure(r, c)
		}
	}
	n := m.engine.Apply(sel, a)
	logging.Debugf("apply %s to %s: %d cells", a, sel, n)
	return n
}

func (m *model) openPrompt(p dialogs.Purpose, initial string) tea.Cmd {
	prompt := dialogs.NewPrompt(p, initial, m.lastDir)
	m.activeDialog = prompt
	m.ui.mode = modeDialog
	return prompt.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

func (m *model) handlePrompt(msg dialogs.PromptConfirmedMsg) tea.Cmd {
	value := strings.TrimSpace(msg.Value)
	switch msg.Purpose {
	case dialogs.PromptTextColor, dialogs.PromptBackground:
		idx, err := m.book.Palette.Add(value)
		if err != nil {
			return m.startNotice(err.Error(), noticeError, noticeDuration)
		}
		if msg.Purpose == dialogs.PromptTextColor {
			m.cfg.textColor = value
			m.apply(format.TextColor(idx))
		} else {
			m.cfg.bgColor = value
			m.apply(format.Background(idx))
		}

	case dialogs.PromptFontSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return m.startNotice(fmt.Sprintf("font size %q is not a number", value), noticeError, noticeDuration)
		}
		m.apply(format.FontSize(n))
		if n < 0 {
			return m.startNotice("font size cleared", noticeInfo, noticeDuration)
		}

	case dialogs.PromptJump:
		return m.jumpToRef(value)

	case dialogs.PromptSearch:
		return m.searchNext(value)

	case dialogs.PromptValue:
		// values keep their spacing
		m.book.Sheet.SetValue(m.cursorRow, m.cursorCol, msg.Value)
		m.book.Sheet.NotifyUpdated()

	case dialogs.PromptSave:
		if err := workbook.Save(m.book, value); err != nil {
			logging.Errorf("save %s: %v", value, err)
			return m.startNotice("Save failed: "+err.Error(), noticeError, noticeDuration)
		}
		m.path = value
		m.lastDir = filepath.Dir(value)
		m.modified = false
		return m.startNotice("Saved "+filepath.Base(value), noticeSuccess, noticeDuration)

	case dialogs.PromptExport:
		if err := writeWorkbook(m.book, value); err != nil {
			logging.Errorf("export %s: %v", value, err)
			return m.startNotice("Export failed: "+err.Error(), noticeError, noticeDuration)
		}
		m.lastDir = filepath.Dir(value)
		return m.startNotice("Exported "+filepath.Base(value), noticeSuccess, noticeDuration)
	}
	return nil
}

func (m *model) copyFormat() tea.Cmd {
	tok := m.cursorStyle().ToToken()
	m.copied, m.hasCopied = tok, true
	if err := m.copyText(tok); err != nil {
		logging.Warnf("copy format: %v", err)
		return m.startNotice("Format copied (clipboard unavailable)", noticeWarn, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied format %q", tok), noticeSuccess, noticeDuration)
}

// pasteFormat applies the clipboard token to the selection. An unreadable or
// empty clipboard falls back to the last copied token; with nothing copied
// the sheet is left alone.
func (m *model) pasteFormat() tea.Cmd {
	text, err := m.pasteText()
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		if !m.hasCopied {
			if err != nil {
				return m.startNotice("Nothing to paste: "+err.Error(), noticeError, noticeDuration)
			}
			return m.startNotice("Nothing to paste: clipboard is empty", noticeWarn, noticeDuration)
		}
		text = m.copied
	}
	st, err := cellstyle.FromToken(text)
	if err != nil {
		logging.Warnf("paste format: %v", err)
		return m.startNotice("Clipboard does not hold a cell format", noticeError, noticeDuration)
	}
	n := m.apply(format.Paste(st))
	if st.IsDefault() {
		return m.startNotice(fmt.Sprintf("Cleared formatting on %d cells", n), noticeSuccess, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Pasted format to %d cells", n), noticeSuccess, noticeDuration)
}

// refresh re-renders the grid after the sheet reported a change, the
// cursor moved or the terminal was resized.
func (m *model) refresh() {
	if !m.ready || !m.needsRedraw {
		return
	}
	m.scrollToCursor()
	m.viewport.SetContent(m.renderGrid())
	m.needsRedraw = false
}

func (m *model) scrollToCursor() {
	visRows := max(1, m.viewport.Height-1)
	if m.cursorRow < m.ui.rowOffset {
		m.ui.rowOffset = m.cursorRow
	}
	if m.cursorRow >= m.ui.rowOffset+visRows {
		m.ui.rowOffset = m.cursorRow - visRows + 1
	}
	visCols := m.visibleCols()
	if m.cursorCol < m.ui.colOffset {
		m.ui.colOffset = m.cursorCol
	}
	if m.cursorCol >= m.ui.colOffset+visCols {
		m.ui.colOffset = m.cursorCol - visCols + 1
	}
}

func (m *model) visibleCols() int {
	return max(1, (m.viewport.Width-m.gutterWidth())/columnWidth)
}

// defaultSaveName derives a file name with ext from the loaded path.
func defaultSaveName(path, ext string) string {
	if path == "" {
		return "sheet" + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
