package main

import (
	"github.com/fwojciec/llmstxt/mcp"
)

// Run executes the serve command. It blocks until the client disconnects or
// the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Pipeline)
	return server.Run(deps.Ctx)
}
