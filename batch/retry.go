package batch

import (
	"context"
	"time"

	"github.com/fwojciec/clipmd"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, source string) (string, error)

// RetryFunc is called before each retry with the attempt about to be made.
type RetryFunc func(source string, attempt int, err error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches source, retrying failed attempts after each of
// delays in turn. Errors with the EINVALID or ENOTFOUND code are returned
// immediately since another attempt cannot succeed.
func FetchWithRetryDelays(ctx context.Context, source string, fetch FetchFunc, onRetry RetryFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, source)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(source, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch clipmd.ErrorCode(err) {
	case clipmd.EINVALID, clipmd.ENOTFOUND:
		return false
	}
	return true
}
