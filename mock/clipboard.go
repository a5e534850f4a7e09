package mock

import "github.com/fwojciec/clipmd"

var _ clipmd.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of clipmd.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}
