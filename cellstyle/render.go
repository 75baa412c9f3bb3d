package cellstyle

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Inherit is the colour value used when a style carries no colour.
const Inherit = "inherit"

// ColorLookup resolves palette indices to colour strings.
type ColorLookup interface {
	Color(index int) (string, bool)
}

// RenderStyle is the visual projection of a Style with colours resolved.
type RenderStyle struct {
	TextAlign       string // left|center|right
	FontWeight      string // bold|normal
	FontStyle       string // italic|normal
	Color           string // css colour or "inherit"
	BackgroundColor string // css colour or "inherit"
	FontSize        int    // points, only meaningful when HasFontSize
	HasFontSize     bool
}

// ToRenderStyle resolves s against the palette. Indices the palette does not
// know render as Inherit.
func (s Style) ToRenderStyle(lookup ColorLookup) RenderStyle {
	rs := RenderStyle{
		TextAlign:       s.alignment.String(),
		FontWeight:      "normal",
		FontStyle:       "normal",
		Color:           resolve(lookup, s.text),
		BackgroundColor: resolve(lookup, s.background),
	}
	if s.bold {
		rs.FontWeight = "bold"
	}
	if s.italic {
		rs.FontStyle = "italic"
	}
	rs.FontSize, rs.HasFontSize = s.size.Points()
	return rs
}

func resolve(lookup ColorLookup, ref ColorRef) string {
	i, ok := ref.Index()
	if !ok || lookup == nil {
		return Inherit
	}
	c, ok := lookup.Color(i)
	if !ok || c == "" {
		return Inherit
	}
	return c
}

// CSS renders the style as an inline declaration list.
func (rs RenderStyle) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-weight:%s;", rs.FontWeight)
	fmt.Fprintf(&b, "font-style:%s;", rs.FontStyle)
	fmt.Fprintf(&b, "text-align:%s;", rs.TextAlign)
	fmt.Fprintf(&b, "color:%s;", rs.Color)
	fmt.Fprintf(&b, "background-color:%s;", rs.BackgroundColor)
	if rs.HasFontSize {
		fmt.Fprintf(&b, "font-size:%dpt;", rs.FontSize)
	}
	return b.String()
}

// Lipgloss applies the style on top of base for terminal rendering.
// Terminals have no font sizes, so FontSize is ignored here.
func (rs RenderStyle) Lipgloss(base lipgloss.Style) lipgloss.Style {
	st := base.Bold(rs.FontWeight == "bold").Italic(rs.FontStyle == "italic")
	switch rs.TextAlign {
	case "center":
		st = st.Align(lipgloss.Center)
	case "right":
		st = st.Align(lipgloss.Right)
	default:
		st = st.Align(lipgloss.Left)
	}
	if rs.Color != Inherit {
		st = st.Foreground(lipgloss.Color(rs.Color))
	}
	if rs.BackgroundColor != Inherit {
		st = st.Background(lipgloss.Color(rs.BackgroundColor))
	}
	return st
}
