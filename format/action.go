package format

import (
	"fmt"

	"github.com/andareed/siftly-sheet/cellstyle"
	"github.com/andareed/siftly-sheet/grid"
)

type Kind int

const (
	SetAlignment Kind = iota
	ToggleBold
	ToggleItalic
	SetTextColor
	SetBackground
	SetFontSize
	PasteStyle
)

func (k Kind) String() string {
	switch k {
	case SetAlignment:
		return "align"
	case ToggleBold:
		return "bold"
	case ToggleItalic:
		return "italic"
	case SetTextColor:
		return "text-color"
	case SetBackground:
		return "background"
	case SetFontSize:
		return "font-size"
	case PasteStyle:
		return "paste"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action is one formatting command. Only the payload field matching Kind is
// read.
type Action struct {
	Kind      Kind
	Alignment cellstyle.Alignment
	Index     int // palette index for SetTextColor/SetBackground
	Points    int // SetFontSize; negative clears
	Style     cellstyle.Style
}

func Align(a cellstyle.Alignment) Action { return Action{Kind: SetAlignment, Alignment: a} }
func Bold() Action                       { return Action{Kind: ToggleBold} }
func Italic() Action                     { return Action{Kind: ToggleItalic} }
func TextColor(index int) Action         { return Action{Kind: SetTextColor, Index: index} }
func Background(index int) Action        { return Action{Kind: SetBackground, Index: index} }
func FontSize(points int) Action         { return Action{Kind: SetFontSize, Points: points} }

// Paste overwrites the whole style of every selected cell with s.
func Paste(s cellstyle.Style) Action { return Action{Kind: PasteStyle, Style: s} }

// Clear resets the selection to the default style.
func Clear() Action { return Paste(cellstyle.Default()) }

func (a Action) String() string {
	switch a.Kind {
	case SetAlignment:
		return fmt.Sprintf("%s=%s", a.Kind, a.Alignment)
	case SetTextColor, SetBackground:
		return fmt.Sprintf("%s=%d", a.Kind, a.Index)
	case SetFontSize:
		return fmt.Sprintf("%s=%d", a.Kind, a.Points)
	case PasteStyle:
		return fmt.Sprintf("%s=%q", a.Kind, a.Style.ToToken())
	default:
		return a.Kind.String()
	}
}

func (a Action) usesMajority() bool {
	return a.Kind == ToggleBold || a.Kind == ToggleItalic
}

func (a Action) aggregate(block [][]*grid.Cell) any {
	switch a.Kind {
	case ToggleBold:
		return Majority(block, cellstyle.Style.Bold)
	case ToggleItalic:
		return Majority(block, cellstyle.Style.Italic)
	}
	return nil
}

func (a Action) apply(cur cellstyle.Style, multi bool, aggregate any) cellstyle.Style {
	majority, _ := aggregate.(bool)
	switch a.Kind {
	case SetAlignment:
		return cur.WithAlignment(a.Alignment)
	case ToggleBold:
		return Toggle(cur, multi, majority, cellstyle.Style.Bold, cellstyle.Style.WithBold)
	case ToggleItalic:
		return Toggle(cur, multi, majority, cellstyle.Style.Italic, cellstyle.Style.WithItalic)
	case SetTextColor:
		return cur.WithTextColor(a.Index)
	case SetBackground:
		return cur.WithBackgroundColor(a.Index)
	case SetFontSize:
		return cur.WithFontSize(a.Points)
	case PasteStyle:
		return a.Style
	}
	return cur
}
