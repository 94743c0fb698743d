package llmstxt

import "context"

// MaxPromptChars is the maximum number of characters of page content passed
// to a model call. Content longer than this is truncated before the outbound
// request to stay within model context limits.
const MaxPromptChars = 100000

// DocLink represents a single documentation link discovered on a page or
// listed in an llms.txt manifest. A DocLink is immutable once created and
// has no identity beyond its URL; duplicates are not deduplicated.
type DocLink struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LinkExtractor identifies documentation links in page content.
type LinkExtractor interface {
	// ExtractLinks analyzes page content and returns links that appear to
	// lead to documentation. The pageURL is the URL the content was fetched
	// from; returned links may be relative and are resolved against it by
	// the caller.
	ExtractLinks(ctx context.Context, content, pageURL string) ([]DocLink, error)
}

// LinkRanker selects the manifest links most relevant to a query.
type LinkRanker interface {
	// RankLinks returns the subset of links in the manifest content judged
	// most relevant to the query, in relevance order. An empty result means
	// nothing relevant, not an error.
	RankLinks(ctx context.Context, manifest, query string) ([]DocLink, error)
}

// Truncate cuts s to at most n characters. Content passed to model calls
// must be truncated to exactly the budget before the outbound request. The
// budget counts characters, not bytes, and the cut never splits a multibyte
// character.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
