package main

import (
	"context"
	"errors"

	"github.com/fwojciec/clipmd"
	"github.com/fwojciec/clipmd/batch"
)

var _ clipmd.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher routes http(s) sources to Web and everything else to Files.
type SourceFetcher struct {
	Web   clipmd.Fetcher
	Files clipmd.Fetcher
}

// Fetch fetches source with the fetcher that handles its kind.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (string, error) {
	if _, ok := batch.Host(source); ok {
		return f.Web.Fetch(ctx, source)
	}
	return f.Files.Fetch(ctx, source)
}

// Close closes both fetchers.
func (f *SourceFetcher) Close() error {
	return errors.Join(f.Web.Close(), f.Files.Close())
}

func hasURL(sources []string) bool {
	for _, source := range sources {
		if _, ok := batch.Host(source); ok {
			return true
		}
	}
	return false
}
