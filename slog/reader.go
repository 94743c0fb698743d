package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmstxt"
)

// Ensure LoggingReader implements llmstxt.Reader.
var _ llmstxt.Reader = (*LoggingReader)(nil)

// LoggingReader wraps a Reader with debug logging.
type LoggingReader struct {
	next   llmstxt.Reader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next llmstxt.Reader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// Read delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) Read(ctx context.Context, url string) (content string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("clean read",
			"url", url,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Read(ctx, url)
}
