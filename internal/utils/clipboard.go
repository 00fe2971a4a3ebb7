package utils

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard copies text to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard returns a Clipboard backed by the platform clipboard tool
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Available reports whether a clipboard tool was found.
func (c *Clipboard) Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
