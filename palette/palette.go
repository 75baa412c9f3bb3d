// Package palette stores the colours cells refer to by index.
package palette

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid colour")

// Palette is an append-only list of colours. Indices handed out by Add stay
// valid for the lifetime of the palette.
type Palette struct {
	mu     sync.RWMutex
	colors []string
	index  map[string]int
}

func New(colors ...string) (*Palette, error) {
	p := &Palette{index: make(map[string]int)}
	for _, c := range colors {
		if _, err := p.Add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Normalize parses a css hex colour ("#abc", "#aabbcc", "aabbcc") and returns
// it as lower-case "#rrggbb".
func Normalize(css string) (string, error) {
	s := strings.TrimSpace(css)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", fmt.Errorf("%w %q: want #rgb or #rrggbb", ErrInvalidColor, css)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidColor, css, err)
	}
	return c.Hex(), nil
}

// Add returns the index of css, appending it when the palette does not hold
// it yet.
func (p *Palette) Add(css string) (int, error) {
	norm, err := Normalize(css)
	if err != nil {
		return -1, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[norm]; ok {
		return i, nil
	}
	p.colors = append(p.colors, norm)
	i := len(p.colors) - 1
	p.index[norm] = i
	return i, nil
}

// Color implements cellstyle.ColorLookup.
func (p *Palette) Color(i int) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i < 0 || i >= len(p.colors) {
		return "", false
	}
	return p.colors[i], true
}

// Colors returns a copy of the palette in index order.
func (p *Palette) Colors() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.colors...)
}

func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}
