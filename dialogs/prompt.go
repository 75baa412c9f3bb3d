package dialogs

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Purpose says what a prompt's answer will be used for.
type Purpose int

const (
	PromptTextColor Purpose = iota
	PromptBackground
	PromptFontSize
	PromptValue
	PromptSave
	PromptExport
	PromptJump
	PromptSearch
)

func (p Purpose) label() string {
	switch p {
	case PromptTextColor:
		return "Text colour: "
	case PromptBackground:
		return "Background: "
	case PromptFontSize:
		return "Font size: "
	case PromptValue:
		return "Value: "
	case PromptSave:
		return "Save as: "
	case PromptExport:
		return "Export as: "
	case PromptJump:
		return "Go to: "
	case PromptSearch:
		return "Search: "
	default:
		return "> "
	}
}

func (p Purpose) isPath() bool { return p == PromptSave || p == PromptExport }

// allowsEmpty reports whether an empty line is a valid answer.
func (p Purpose) allowsEmpty() bool { return p == PromptValue }

// --- Messages ---------------------------------------------------------------

type (
	PromptConfirmedMsg struct {
		Purpose Purpose
		Value   string
	}
	PromptCanceledMsg struct{ Purpose Purpose }
)

// --- Prompt dialog (modal) --------------------------------------------------

// Prompt is a single-line modal input.
type Prompt struct {
	purpose Purpose
	input   textinput.Model
	visible bool
	// paths without a directory are resolved against lastDir
	lastDir string
}

func (d Prompt) Init() tea.Cmd { return d.input.Focus() }

// NewPrompt opens a prompt pre-filled with initial. initial doubles as the
// placeholder used when the user confirms an empty line.
func NewPrompt(purpose Purpose, initial, lastDir string) *Prompt {
	ti := textinput.New()
	ti.Placeholder = initial
	ti.Prompt = purpose.label()
	ti.CharLimit = 256
	ti.Width = 50
	if initial != "" {
		ti.SetValue(initial)
	}
	ti.Focus()
	return &Prompt{purpose: purpose, input: ti, visible: true, lastDir: lastDir}
}

func (d *Prompt) Purpose() Purpose { return d.purpose }

func (d *Prompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := d.input.Value()
			if val == "" && !d.purpose.allowsEmpty() {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
				if val == "" {
					return d, nil
				}
			}
			if d.purpose.isPath() && d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
				val = filepath.Join(d.lastDir, filepath.Base(val))
			}
			log.Printf("Prompt:Update:: confirmed %q for purpose %d", val, d.purpose)
			purpose := d.purpose
			return d, func() tea.Msg { return PromptConfirmedMsg{Purpose: purpose, Value: val} }
		case "esc":
			purpose := d.purpose
			return d, func() tea.Msg { return PromptCanceledMsg{Purpose: purpose} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Prompt) View() string {
	if !d.visible {
		return ""
	}
	help := hintStyle.Render("enter to apply • esc to cancel")
	return newBox(60).Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *Prompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Prompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Prompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *Prompt) Blur()           { d.input.Blur() }
func (d Prompt) IsVisible() bool { return d.visible }
