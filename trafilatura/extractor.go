// Package trafilatura provides a local implementation of llmstxt.Extractor.
// It is the fallback content cleaner used when the content-cleaning proxy is
// unavailable: boilerplate (nav, footer, sidebar, ads) is stripped from the
// fetched page before classification and link extraction.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/llmstxt"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements llmstxt.Extractor at compile time.
var _ llmstxt.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*llmstxt.ExtractResult, error) {
	if rawHTML == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &llmstxt.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
