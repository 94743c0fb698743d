package llmstxt

import (
	"bufio"
	"context"
	"regexp"
	"strings"
)

// Manifest is an llms.txt file found at a conventional location: a plain
// text project overview with links to documentation intended for
// consumption by language models.
type Manifest struct {
	// Content is the raw manifest text.
	Content string

	// URL is the resolved URL the manifest was fetched from.
	URL string
}

// manifestLink matches the llms.txt link-line convention:
// "- [Title](url)" optionally followed by ": description".
var manifestLink = regexp.MustCompile(`^\s*[-*]\s*\[([^\]]+)\]\(([^)\s]+)\)\s*:?\s*(.*)$`)

// ParseManifestLinks extracts documentation links from llms.txt content
// without a model call. Links appear in document order; URLs are returned
// as written and may be relative.
func ParseManifestLinks(content string) []DocLink {
	var links []DocLink
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := manifestLink.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		links = append(links, DocLink{
			URL:         m[2],
			Title:       strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[3]),
		})
	}
	return links
}

// Ensure ManifestRanker implements LinkRanker at compile time.
var _ LinkRanker = (*ManifestRanker)(nil)

// ManifestRanker is a deterministic LinkRanker used when no model is
// configured. It returns the manifest's own links in document order,
// ignoring the query.
type ManifestRanker struct{}

// NewManifestRanker creates a new ManifestRanker.
func NewManifestRanker() *ManifestRanker {
	return &ManifestRanker{}
}

// RankLinks returns every link listed in the manifest, in document order.
func (r *ManifestRanker) RankLinks(_ context.Context, manifest, _ string) ([]DocLink, error) {
	return ParseManifestLinks(manifest), nil
}
