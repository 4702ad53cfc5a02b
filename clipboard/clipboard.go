// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no native clipboard tool is available (for
// example over SSH).
package clipboard

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/census-timeline/logging"
)

// Copy tries the native clipboard first, then OSC52.
func Copy(text string) error {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	return copyOSC52(text)
}
