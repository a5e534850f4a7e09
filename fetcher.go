package clipmd

import "context"

// Fetcher retrieves page HTML for a source.
// A source is a URL or, for local implementations, a file path.
type Fetcher interface {
	// Fetch returns the HTML of the source.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
