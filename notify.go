package llmstxt

import "context"

// ProgressFunc is called as the pipeline moves between stages. Progress
// messages are informational only and carry no control-flow significance.
type ProgressFunc func(ctx context.Context, message string)
