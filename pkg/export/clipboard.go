package export

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("clipboard not supported on this system")

// writeClipboard is swapped in tests; CI machines rarely have a clipboard.
var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
