package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.LinkRanker = (*LinkRanker)(nil)

// LinkRanker is a mock implementation of llmstxt.LinkRanker.
type LinkRanker struct {
	RankLinksFn func(ctx context.Context, manifest, query string) ([]llmstxt.DocLink, error)
}

func (r *LinkRanker) RankLinks(ctx context.Context, manifest, query string) ([]llmstxt.DocLink, error) {
	return r.RankLinksFn(ctx, manifest, query)
}
