// Package batch clips several sources concurrently.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/clipmd"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources clipped at once.
const DefaultConcurrency = 3

var _ clipmd.PageClipper = (*Clipper)(nil)

// Clipper fetches sources and converts their main content to Markdown.
type Clipper struct {
	Fetcher     clipmd.Fetcher
	Extractor   clipmd.Extractor
	Converter   clipmd.Converter
	RateLimiter clipmd.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
	OnRetry     RetryFunc // optional
}

// ClipAll clips every source and returns the pages in source order.
// Sources that fail are reported through progress and left out.
// Only context cancellation makes ClipAll itself fail.
func (c *Clipper) ClipAll(ctx context.Context, sources []string, progress clipmd.ClipProgressFunc) ([]*clipmd.Page, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*clipmd.Page, len(sources))

	var mu sync.Mutex
	completed := 0
	report := func(source string, err error) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if progress != nil {
			progress(clipmd.ClipProgress{
				Source:    source,
				Completed: completed,
				Total:     len(sources),
				Error:     err,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, source := range sources {
		g.Go(func() error {
			page, err := c.clip(gctx, source)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err == nil {
				results[i] = page
			}
			report(source, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := make([]*clipmd.Page, 0, len(results))
	for _, page := range results {
		if page != nil {
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func (c *Clipper) clip(ctx context.Context, source string) (*clipmd.Page, error) {
	if host, ok := Host(source); ok && c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, host); err != nil {
			return nil, err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetryDelays(ctx, source, c.Fetcher.Fetch, c.OnRetry, delays)
	if err != nil {
		return nil, err
	}

	var title string
	var failure error
	resp := clipmd.Respond(func() (md string, err error) {
		defer func() { failure = err }()
		result, err := c.Extractor.Extract(html)
		if err != nil {
			return "", err
		}
		title = result.Title
		return c.Converter.Convert(result.ContentHTML)
	})
	if !resp.Success {
		if failure != nil {
			return nil, failure
		}
		return nil, clipmd.Errorf(clipmd.EINTERNAL, "%s", resp.Error)
	}
	if resp.Content == "" {
		return nil, clipmd.Errorf(clipmd.EINVALID, "no content found in %s", source)
	}

	return &clipmd.Page{Source: source, Title: title, Content: resp.Content}, nil
}
