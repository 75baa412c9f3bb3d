// Package cellstyle holds the formatting attributes of a single cell, their
// compact token encoding and their projection into a renderable style.
package cellstyle

// ColorRef is an optional index into an external colour palette.
// The zero value is "no colour" and means inherit.
type ColorRef struct {
	index int
	set   bool
}

// Ref returns a reference to palette entry i. Negative indices yield an unset ref.
func Ref(i int) ColorRef {
	if i < 0 {
		return ColorRef{}
	}
	return ColorRef{index: i, set: true}
}

func (r ColorRef) Index() (int, bool) { return r.index, r.set }

// Size is an optional font size in points. The zero value inherits the default size.
type Size struct {
	points int
	set    bool
}

// Points returns a size of n points. Negative sizes yield an unset size.
func Points(n int) Size {
	if n < 0 {
		return Size{}
	}
	return Size{points: n, set: true}
}

func (s Size) Points() (int, bool) { return s.points, s.set }

// Style is the formatting of one cell. Every With method returns an updated
// copy and leaves the receiver untouched. The zero value is the default style.
type Style struct {
	alignment  Alignment
	text       ColorRef
	background ColorRef
	bold       bool
	italic     bool
	size       Size
}

// Default returns the all-default style.
func Default() Style { return Style{} }

func (s Style) Alignment() Alignment { return s.alignment }
func (s Style) Bold() bool           { return s.bold }
func (s Style) Italic() bool         { return s.italic }

// TextColor returns the palette index of the text colour, if any.
func (s Style) TextColor() (int, bool) { return s.text.Index() }

// BackgroundColor returns the palette index of the background colour, if any.
func (s Style) BackgroundColor() (int, bool) { return s.background.Index() }

// FontSize returns the font size in points, if any.
func (s Style) FontSize() (int, bool) { return s.size.Points() }

// IsDefault reports whether s carries no formatting at all.
func (s Style) IsDefault() bool { return s == Style{} }

func (s Style) WithAlignment(a Alignment) Style {
	s.alignment = a
	return s
}

func (s Style) WithBold(b bool) Style {
	s.bold = b
	return s
}

func (s Style) WithItalic(i bool) Style {
	s.italic = i
	return s
}

func (s Style) WithTextColor(index int) Style {
	s.text = Ref(index)
	return s
}

func (s Style) WithBackgroundColor(index int) Style {
	s.background = Ref(index)
	return s
}

func (s Style) WithFontSize(points int) Style {
	s.size = Points(points)
	return s
}

func (s Style) WithoutTextColor() Style {
	s.text = ColorRef{}
	return s
}

func (s Style) WithoutBackgroundColor() Style {
	s.background = ColorRef{}
	return s
}

func (s Style) WithoutFontSize() Style {
	s.size = Size{}
	return s
}

// String returns the token encoding of s.
func (s Style) String() string { return s.ToToken() }
