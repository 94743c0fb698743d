// Package goquery provides a deterministic, CSS-selector based
// implementation of llmstxt.LinkExtractor. It stands in for the model-backed
// extractor when no API key is configured, scanning navigation, content, and
// footer areas for documentation-looking anchors.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmstxt"
)

// docTextHints are anchor-text words that suggest a documentation link.
var docTextHints = []string{
	"doc", "documentation", "api", "reference", "guide", "tutorial",
	"getting started", "quickstart", "manual", "developer",
}

// areaSelectors are scanned in priority order.
var areaSelectors = []string{
	"nav a[href], [role=\"navigation\"] a[href], .nav a[href], .navbar a[href]",
	".sidebar a[href], .toc a[href], aside a[href]",
	"main a[href], article a[href], .content a[href]",
	"footer a[href], .footer a[href]",
}

// Ensure Extractor implements llmstxt.LinkExtractor at compile time.
var _ llmstxt.LinkExtractor = (*Extractor)(nil)

// Extractor extracts documentation links from HTML using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses the content as HTML and returns anchors whose text or
// href suggests documentation. Links are deduplicated by URL in first-seen
// order. External links (different host than the page) are filtered out so
// a landing page's social links don't get probed.
func (e *Extractor) ExtractLinks(_ context.Context, content, pageURL string) ([]llmstxt.DocLink, error) {
	base, err := url.Parse(llmstxt.NormalizeURL(pageURL))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []llmstxt.DocLink

	for _, selector := range areaSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || isNonHTTPLink(href) {
				return
			}

			text := strings.TrimSpace(sel.Text())
			if !looksLikeDocLink(href, text) {
				return
			}

			resolved := llmstxt.ResolveLinkURL(base.String(), href)
			if seen[resolved] || !sameHost(base, resolved) {
				return
			}
			seen[resolved] = true

			links = append(links, llmstxt.DocLink{
				URL:   resolved,
				Title: text,
			})
		})
	}

	return links, nil
}

// isNonHTTPLink reports whether the href is a javascript:, mailto:, tel:, or
// fragment link.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(href, "#")
}

// looksLikeDocLink reports whether the href or anchor text suggests a
// documentation destination.
func looksLikeDocLink(href, text string) bool {
	haystack := strings.ToLower(href + " " + text)
	for _, hint := range docTextHints {
		if strings.Contains(haystack, hint) {
			return true
		}
	}
	return false
}

// sameHost reports whether the resolved URL shares the base URL's host.
func sameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}
