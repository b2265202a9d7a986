package monitor

import (
	"context"
	"time"

	"github.com/fwojciec/docwatch"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ docwatch.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher wraps a Fetcher with exponential backoff retries, so a
// transient fetch failure does not mark a source as failed for the run.
type RetryFetcher struct {
	next   docwatch.Fetcher
	delays []time.Duration
	log    LogFunc
}

// NewRetryFetcher creates a RetryFetcher. A nil delays slice uses
// DefaultRetryDelays; log may be nil.
func NewRetryFetcher(next docwatch.Fetcher, delays []time.Duration, log LogFunc) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{next: next, delays: delays, log: log}
}

// Fetch delegates to the wrapped fetcher, retrying on failure.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, f.next.Fetch, f.log, f.delays)
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

// FetchWithRetryDelays attempts a fetch with exponential backoff, making one
// initial attempt plus one retry per delay. The logger function, if provided,
// is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
