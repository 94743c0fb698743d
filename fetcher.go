package llmstxt

import "context"

// Fetcher retrieves textual content from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Redirects are followed. Any transport failure or non-2xx status is an
	// error; callers collapse fetch errors to absence, so implementations
	// do not retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
