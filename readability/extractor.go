// Package readability implements clipmd.Extractor with Mozilla's
// Readability algorithm.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/clipmd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements clipmd.Extractor at compile time.
var _ clipmd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL resolves relative links and images against pageURL.
func WithPageURL(pageURL *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = pageURL
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the article.
func (e *Extractor) Extract(rawHTML string) (*clipmd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, clipmd.Errorf(clipmd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, clipmd.Errorf(clipmd.EINVALID, "no readable article: %v", err)
	}

	return &clipmd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
