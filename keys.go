package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding
	Collapse    key.Binding
	Bold        key.Binding
	Italic      key.Binding
	AlignLeft   key.Binding
	AlignCenter key.Binding
	AlignRight  key.Binding
	TextColor   key.Binding
	Background  key.Binding
	FontSize    key.Binding
	CopyFormat  key.Binding
	PasteFormat key.Binding
	ClearFormat key.Binding
	EditValue   key.Binding
	SaveToFile  key.Binding
	ExportFile  key.Binding
	Jump        key.Binding
	JumpStart   key.Binding
	JumpEnd     key.Binding
	Search      key.Binding
	SearchNext  key.Binding
	OpenHelp    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "move right"),
	),
	ExtendUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("shift+↑", "extend selection up"),
	),
	ExtendDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("shift+↓", "extend selection down"),
	),
	ExtendLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←", "extend selection left"),
	),
	ExtendRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→", "extend selection right"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "collapse selection"),
	),
	Bold: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle bold"),
	),
	Italic: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "toggle italic"),
	),
	AlignLeft: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "align left"),
	),
	AlignCenter: key.NewBinding(
		key.WithKeys("|"),
		key.WithHelp("|", "align center"),
	),
	AlignRight: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "align right"),
	),
	TextColor: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "text colour"),
	),
	Background: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "background colour"),
	),
	FontSize: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "font size"),
	),
	CopyFormat: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy format"),
	),
	PasteFormat: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste format"),
	),
	ClearFormat: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "clear formatting"),
	),
	EditValue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit value"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save to filename"),
	),
	ExportFile: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export (.xlsx/.csv)"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to cell or range"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "go to A1"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "go to last cell"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search values"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		k.Left,
		k.Right,
		k.ExtendUp,
		k.ExtendDown,
		k.ExtendLeft,
		k.ExtendRight,
		k.Collapse,
		k.Jump,
		k.JumpStart,
		k.JumpEnd,
		k.Search,
		k.SearchNext,
		k.Bold,
		k.Italic,
		k.AlignLeft,
		k.AlignCenter,
		k.AlignRight,
		k.TextColor,
		k.Background,
		k.FontSize,
		k.CopyFormat,
		k.PasteFormat,
		k.ClearFormat,
		k.EditValue,
		k.SaveToFile,
		k.ExportFile,
		k.Quit,
	}
}
