package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of llmstxt.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(ctx context.Context, content, pageURL string) ([]llmstxt.DocLink, error)
}

func (e *LinkExtractor) ExtractLinks(ctx context.Context, content, pageURL string) ([]llmstxt.DocLink, error) {
	return e.ExtractLinksFn(ctx, content, pageURL)
}

var _ llmstxt.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of llmstxt.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*llmstxt.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*llmstxt.ExtractResult, error) {
	return e.ExtractFn(html)
}
