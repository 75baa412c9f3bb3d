package cellstyle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-sheet/logging"
)

// ErrMalformedToken is returned (wrapped in a *TokenError) when a token
// cannot be decoded.
var ErrMalformedToken = errors.New("malformed style token")

// TokenError describes where and why a token failed to decode.
type TokenError struct {
	Token  string
	Offset int
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v %q at offset %d: %s", ErrMalformedToken, e.Token, e.Offset, e.Reason)
}

func (e *TokenError) Unwrap() error { return ErrMalformedToken }

// Tags in canonical order. Alignment has two spellings sharing one slot.
const (
	tagRight      = 'r'
	tagCenter     = 'c'
	tagText       = 't'
	tagBackground = 'b'
	tagItalic     = 'i'
	tagBold       = 'g'
	tagSize       = 's'
)

// tagSlot returns the canonical position of a tag and whether it carries a
// numeric payload.
func tagSlot(tag byte) (slot int, numeric bool, ok bool) {
	switch tag {
	case tagRight, tagCenter:
		return 0, false, true
	case tagText:
		return 1, true, true
	case tagBackground:
		return 2, true, true
	case tagItalic:
		return 3, false, true
	case tagBold:
		return 4, false, true
	case tagSize:
		return 5, true, true
	}
	return 0, false, false
}

// ToToken encodes s in canonical order:
//
//	[$r|$c] [$tNN] [$bNN] [$i] [$g] [$sNN]
//
// Numbers are zero-padded to two digits. The default style encodes to "".
func (s Style) ToToken() string {
	var b strings.Builder
	switch s.alignment {
	case Right:
		b.WriteString("$r")
	case Center:
		b.WriteString("$c")
	}
	if i, ok := s.text.Index(); ok {
		fmt.Fprintf(&b, "$t%02d", i)
	}
	if i, ok := s.background.Index(); ok {
		fmt.Fprintf(&b, "$b%02d", i)
	}
	if s.italic {
		b.WriteString("$i")
	}
	if s.bold {
		b.WriteString("$g")
	}
	if n, ok := s.size.Points(); ok {
		fmt.Fprintf(&b, "$s%02d", n)
	}
	return b.String()
}

// FromToken decodes a token produced by ToToken. Only canonical tokens are
// accepted: tags in canonical order, each at most once, payloads of at least
// two digits without extra leading zeros. For every accepted token t,
// FromToken(t).ToToken() == t.
func FromToken(token string) (Style, error) {
	var s Style
	last := -1
	pos := 0
	for pos < len(token) {
		start := pos
		if token[pos] != '$' {
			return Style{}, &TokenError{Token: token, Offset: pos, Reason: "expected '$'"}
		}
		if pos+1 >= len(token) {
			return Style{}, &TokenError{Token: token, Offset: pos, Reason: "missing tag"}
		}
		tag := token[pos+1]
		slot, numeric, ok := tagSlot(tag)
		if !ok {
			return Style{}, &TokenError{Token: token, Offset: pos, Reason: fmt.Sprintf("unknown tag %q", tag)}
		}
		if slot <= last {
			return Style{}, &TokenError{Token: token, Offset: pos, Reason: fmt.Sprintf("tag %q out of order or repeated", tag)}
		}
		last = slot
		pos += 2

		n := 0
		if numeric {
			end := pos
			for end < len(token) && token[end] >= '0' && token[end] <= '9' {
				end++
			}
			digits := token[pos:end]
			switch {
			case len(digits) == 0:
				return Style{}, &TokenError{Token: token, Offset: pos, Reason: "non-numeric payload"}
			case len(digits) < 2:
				return Style{}, &TokenError{Token: token, Offset: pos, Reason: "payload must have at least two digits"}
			case len(digits) > 2 && digits[0] == '0':
				return Style{}, &TokenError{Token: token, Offset: pos, Reason: "payload has extra leading zeros"}
			}
			v, err := strconv.Atoi(digits)
			if err != nil {
				return Style{}, &TokenError{Token: token, Offset: pos, Reason: err.Error()}
			}
			n = v
			pos = end
		}

		switch tag {
		case tagRight:
			s.alignment = Right
		case tagCenter:
			s.alignment = Center
		case tagText:
			s.text = Ref(n)
		case tagBackground:
			s.background = Ref(n)
		case tagItalic:
			s.italic = true
		case tagBold:
			s.bold = true
		case tagSize:
			s.size = Points(n)
		default:
			return Style{}, &TokenError{Token: token, Offset: start, Reason: "unhandled tag"}
		}
	}
	return s, nil
}

// ParseOrDefault decodes token, falling back to the default style (and
// logging a warning) when it is malformed.
func ParseOrDefault(token string) Style {
	s, err := FromToken(token)
	if err != nil {
		logging.Warnf("cellstyle: %v, using default style", err)
		return Default()
	}
	return s
}
