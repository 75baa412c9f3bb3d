package clipboard

import (
	"strings"
	"testing"
)

func TestOSC52Sequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	got := osc52Sequence("$c$g")
	want := "\x1b]52;c;JGMkZw==\x07"
	if got != want {
		t.Errorf("osc52Sequence() = %q, want %q", got, want)
	}
}

func TestOSC52SequenceInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")

	got := osc52Sequence("$g")
	if !strings.HasPrefix(got, "\x1bPtmux;") {
		t.Errorf("osc52Sequence() = %q, want tmux passthrough", got)
	}
}

func TestOSC52UnsupportedOnDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if osc52Supported() {
		t.Fatal("dumb terminal should not support OSC52")
	}
	if err := copyOSC52("$g"); err == nil {
		t.Fatal("expected error when OSC52 is unavailable")
	}
}
