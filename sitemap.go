package llmstxt

import "context"

// SitemapSource discovers URLs from a site's sitemap.
type SitemapSource interface {
	// DiscoverURLs finds URLs listed in the site's sitemap. It checks
	// robots.txt for sitemap directives, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively. Returns an empty slice
	// (not nil) when no sitemap exists.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
