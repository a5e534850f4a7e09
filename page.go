package clipmd

import "context"

// Page represents a page whose main content was converted to Markdown.
type Page struct {
	Source  string
	Title   string
	Content string // Markdown
}

// ClipProgress reports progress while sources are clipped.
type ClipProgress struct {
	Source    string
	Completed int
	Total     int
	Error     error
}

// ClipProgressFunc is called as sources are processed.
type ClipProgressFunc func(ClipProgress)

// PageClipper turns sources into Markdown pages.
// Implementations hide fetching, retry, extraction, and conversion.
// Sources that fail are reported through progress and left out of the result.
type PageClipper interface {
	ClipAll(ctx context.Context, sources []string, progress ClipProgressFunc) ([]*Page, error)
}
