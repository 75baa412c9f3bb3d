// Package clipboard moves style tokens through the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-sheet/logging"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is available (e.g. over ssh).
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}

// Paste reads text from the system clipboard. OSC52 is write-only, so there
// is no fallback.
func Paste() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("clipboard unavailable (no system clipboard utility)")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.Warnf("Clipboard: read failed: %v", err)
		return "", err
	}
	return text, nil
}
