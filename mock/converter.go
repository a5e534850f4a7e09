package mock

import "github.com/fwojciec/clipmd"

var _ clipmd.Converter = (*Converter)(nil)

// Converter is a mock implementation of clipmd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
