package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	var progress llmstxt.ProgressFunc
	if c.Progress {
		progress = func(_ context.Context, message string) {
			fmt.Fprintln(deps.Stderr, message)
		}
	}

	out, err := deps.Pipeline.Run(deps.Ctx, c.URL, c.Query, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
