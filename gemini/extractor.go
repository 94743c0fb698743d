package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure Extractor implements llmstxt.LinkExtractor at compile time.
var _ llmstxt.LinkExtractor = (*Extractor)(nil)

// Extractor identifies documentation links in page content using Gemini
// structured output.
type Extractor struct {
	client *Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *Client) *Extractor {
	return &Extractor{client: client}
}

// ExtractLinks analyzes page content and returns links that appear to lead
// to documentation. Returned URLs may be relative; the caller resolves them
// against the page URL.
func (e *Extractor) ExtractLinks(ctx context.Context, content, pageURL string) ([]llmstxt.DocLink, error) {
	if content == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "content required")
	}

	text, err := e.client.generate(ctx, BuildExtractPrompt(content, pageURL), BuildLinkListConfig())
	if err != nil {
		return nil, err
	}
	return DecodeLinks(text)
}

// BuildExtractPrompt builds the link-extraction instruction.
func BuildExtractPrompt(content, pageURL string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following webpage content and identify links that appear to lead to documentation pages, API references, tutorials, or other developer resources.\n\n")
	fmt.Fprintf(&sb, "<webpage-content>\n%s\n</webpage-content>\n\n", content)
	fmt.Fprintf(&sb, "The content was fetched from %s.\n", pageURL)
	sb.WriteString("Extract all links that appear to point to documentation. For each link provide the URL (relative URLs are acceptable), a title describing the resource, and a brief description of what content you expect to find there. ")
	sb.WriteString("Focus on links that would be most valuable for a developer trying to understand how to use this tool.")
	return sb.String()
}
