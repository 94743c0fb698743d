package main

import (
	"context"
	"io"

	"github.com/fwojciec/llmstxt"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *llmstxt.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Query QueryCmd `cmd:"" help:"Fetch documentation for a URL relevant to a query"`
	Serve ServeCmd `cmd:"" help:"Serve the parse_llms_txt tool over MCP stdio"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	URL      string `arg:"" help:"Website URL"`
	Query    string `arg:"" help:"What to look for in the documentation"`
	Progress bool   `short:"p" help:"Print stage progress to stderr"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}
