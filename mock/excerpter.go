package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.Excerpter = (*Excerpter)(nil)

// Excerpter is a mock implementation of llmstxt.Excerpter.
type Excerpter struct {
	ExcerptFn func(ctx context.Context, content, query string) (string, error)
}

func (e *Excerpter) Excerpt(ctx context.Context, content, query string) (string, error) {
	return e.ExcerptFn(ctx, content, query)
}
