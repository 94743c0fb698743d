package llmstxt

import "context"

// Classifier decides whether page content is developer documentation.
// It gates the expensive content-cleaning fallback so it does not run on
// arbitrary non-technical pages.
type Classifier interface {
	// IsDeveloperDocs reports whether the content looks like documentation
	// for a developer tool, API, library, or framework. The content is
	// already truncated to the prompt budget by the caller.
	IsDeveloperDocs(ctx context.Context, content string) (bool, error)
}
