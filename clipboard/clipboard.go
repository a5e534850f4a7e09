// Package clipboard implements clipmd.Clipboard with the system clipboard,
// falling back to the OSC 52 terminal escape sequence when no clipboard
// utility is available (for example over SSH).
package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/clipmd"
	"github.com/mattn/go-isatty"
)

// Ensure Clipboard implements clipmd.Clipboard at compile time.
var _ clipmd.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
	fallback    io.Writer
	isTerminal  func(io.Writer) bool
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithWriteFunc replaces the system clipboard write.
func WithWriteFunc(fn func(string) error) Option {
	return func(c *Clipboard) {
		c.write = fn
		c.unsupported = false
	}
}

// WithFallback sets the writer that receives the OSC 52 sequence when the
// system clipboard fails. A nil writer disables the fallback.
func WithFallback(w io.Writer) Option {
	return func(c *Clipboard) {
		c.fallback = w
	}
}

// WithTerminalCheck replaces the check that decides whether the fallback
// writer is a terminal able to act on OSC 52.
func WithTerminalCheck(fn func(io.Writer) bool) Option {
	return func(c *Clipboard) {
		c.isTerminal = fn
	}
}

// New creates a Clipboard backed by the system clipboard with an OSC 52
// fallback written to stderr.
func New(opts ...Option) *Clipboard {
	c := &Clipboard{
		write:       atotto.WriteAll,
		unsupported: atotto.Unsupported,
		fallback:    os.Stderr,
		isTerminal:  IsTerminal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WriteText replaces the clipboard contents with text.
// The OSC 52 fallback only counts as success when the fallback writer is a
// terminal; otherwise an EINTERNAL error names the clipboard failure.
func (c *Clipboard) WriteText(text string) error {
	var cause error
	if c.unsupported {
		cause = errors.New("no clipboard utility found")
	} else if cause = c.write(text); cause == nil {
		return nil
	}

	if c.fallback == nil {
		return clipmd.Errorf(clipmd.EINTERNAL, "clipboard unavailable: %v", cause)
	}
	if !c.isTerminal(c.fallback) {
		return clipmd.Errorf(clipmd.EINTERNAL, "clipboard unavailable: %v; OSC 52 fallback needs a terminal", cause)
	}

	if _, err := io.WriteString(c.fallback, OSC52(text)); err != nil {
		return clipmd.Errorf(clipmd.EINTERNAL, "clipboard unavailable: %v; OSC 52 write failed: %v", cause, err)
	}
	return nil
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OSC52 returns the terminal escape sequence that sets the clipboard to text.
func OSC52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}
