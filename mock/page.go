package mock

import (
	"context"

	"github.com/fwojciec/clipmd"
)

var _ clipmd.PageClipper = (*PageClipper)(nil)

// PageClipper is a mock implementation of clipmd.PageClipper.
type PageClipper struct {
	ClipAllFn func(ctx context.Context, sources []string, progress clipmd.ClipProgressFunc) ([]*clipmd.Page, error)
}

func (c *PageClipper) ClipAll(ctx context.Context, sources []string, progress clipmd.ClipProgressFunc) ([]*clipmd.Page, error) {
	return c.ClipAllFn(ctx, sources, progress)
}
