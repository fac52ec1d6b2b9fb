package assemble

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is returned when no clipboard utility is available.
var ErrNoClipboard = errors.New("clipboard not available")

// CopyFile places the contents of the assembled artifact at path on the
// system clipboard.
func CopyFile(path string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("assemble: read %s: %w", path, err)
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("assemble: copy to clipboard: %w", err)
	}
	return nil
}
