package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of llmstxt.Classifier.
type Classifier struct {
	IsDeveloperDocsFn func(ctx context.Context, content string) (bool, error)
}

func (c *Classifier) IsDeveloperDocs(ctx context.Context, content string) (bool, error) {
	return c.IsDeveloperDocsFn(ctx, content)
}
