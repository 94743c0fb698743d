package llmstxt

import "context"

// Reader retrieves a simplified, readable extraction of a page's main
// content, typically through a third-party content-cleaning proxy.
type Reader interface {
	// Read fetches the URL through the cleaning service and returns the
	// cleaned content. Failures are errors; callers treat them as absence.
	Read(ctx context.Context, url string) (string, error)
}
