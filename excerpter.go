package llmstxt

import "context"

// Excerpter extracts the sections of documentation content most relevant to
// a query. Used as the last resort when cleaned content exists but no
// documentation links were found in it.
type Excerpter interface {
	// Excerpt returns the parts of content that best answer the query,
	// formatted as markdown.
	Excerpt(ctx context.Context, content, query string) (string, error)
}
