package mock

import "github.com/fwojciec/clipmd"

var _ clipmd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clipmd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*clipmd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*clipmd.ExtractResult, error) {
	return e.ExtractFn(html)
}
