package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.Reader = (*Reader)(nil)

// Reader is a mock implementation of llmstxt.Reader.
type Reader struct {
	ReadFn func(ctx context.Context, url string) (string, error)
}

func (r *Reader) Read(ctx context.Context, url string) (string, error) {
	return r.ReadFn(ctx, url)
}
