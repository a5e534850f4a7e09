// Package fs reads clip sources from the local filesystem and writes
// Markdown output files.
package fs

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/clipmd"
)

// Stdin is the source name that reads HTML from standard input.
const Stdin = "-"

// Ensure Fetcher implements clipmd.Fetcher at compile time.
var _ clipmd.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML from local files, file:// URLs and standard input.
type Fetcher struct {
	stdin io.Reader
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(f *Fetcher) {
		f.stdin = r
	}
}

// NewFetcher creates a Fetcher reading "-" from os.Stdin.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{stdin: os.Stdin}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the contents of the source.
func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if source == Stdin {
		b, err := io.ReadAll(f.stdin)
		if err != nil {
			return "", clipmd.Errorf(clipmd.EINTERNAL, "reading stdin: %v", err)
		}
		return string(b), nil
	}

	path, err := Path(source)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", clipmd.Errorf(clipmd.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", clipmd.Errorf(clipmd.EINTERNAL, "reading %s: %v", path, err)
	}
	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error { return nil }

// Path converts a source to a filesystem path.
// file:// URLs are unwrapped; anything else is returned unchanged.
func Path(source string) (string, error) {
	if source == "" {
		return "", clipmd.Errorf(clipmd.EINVALID, "source required")
	}
	if !strings.HasPrefix(source, "file://") {
		return source, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return "", clipmd.Errorf(clipmd.EINVALID, "invalid file URL: %s", source)
	}
	if u.Path == "" {
		return "", clipmd.Errorf(clipmd.EINVALID, "file URL has no path: %s", source)
	}
	return u.Path, nil
}
