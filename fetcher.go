package docwatch

import "context"

// Fetcher retrieves raw HTML or XML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content; callers cannot tell the difference.
type Fetcher interface {
	// Fetch retrieves the body of the URL as a string.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate limits requests per domain. Concurrent fetches to
// different domains proceed independently; fetches within a domain are
// spaced out.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
