// Package mcp exposes the documentation pipeline as a Model Context
// Protocol server with a single parse_llms_txt tool.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fwojciec/llmstxt"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "llmstxt"
	Version = "1.0.0"
)

const toolDescription = "Retrieve and parse documentation for a website " +
	"via its llms.txt manifest. Locates the manifest, selects the links " +
	"relevant to the query, fetches them, and returns their content as " +
	"markdown. Falls back to link discovery and content extraction when " +
	"no manifest is published."

// ParseArgs are the arguments of the parse_llms_txt tool.
type ParseArgs struct {
	URL   string `json:"url" jsonschema:"The website URL to retrieve documentation from"`
	Query string `json:"query" jsonschema:"What the user wants to find in the documentation"`
}

// Server wraps an MCP server around a documentation pipeline.
type Server struct {
	server   *sdk.Server
	pipeline *llmstxt.Pipeline
}

// NewServer creates a Server with the parse_llms_txt tool registered.
func NewServer(pipeline *llmstxt.Pipeline) *Server {
	s := &Server{
		server:   sdk.NewServer(&sdk.Implementation{Name: Name, Version: Version}, nil),
		pipeline: pipeline,
	}
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "parse_llms_txt",
		Description: toolDescription,
	}, s.parseLlmsTxt)
	return s
}

func (s *Server) parseLlmsTxt(ctx context.Context, req *sdk.CallToolRequest, args ParseArgs) (*sdk.CallToolResult, any, error) {
	progress := progressNotifier(req)

	out, err := s.pipeline.Run(ctx, args.URL, args.Query, progress)
	if err != nil {
		if llmstxt.ErrorCode(err) == llmstxt.EINVALID {
			return &sdk.CallToolResult{
				Content: []sdk.Content{&sdk.TextContent{Text: llmstxt.ErrorMessage(err)}},
				IsError: true,
			}, nil, nil
		}
		return nil, nil, err
	}

	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: out}},
	}, nil, nil
}

// progressNotifier forwards pipeline stage transitions to the client as MCP
// logging notifications. Delivery is best effort.
func progressNotifier(req *sdk.CallToolRequest) llmstxt.ProgressFunc {
	return func(ctx context.Context, message string) {
		if req == nil || req.Session == nil {
			return
		}
		_ = req.Session.Log(ctx, &sdk.LoggingMessageParams{
			Level: "info",
			Data:  message,
		})
	}
}

// Connect serves one client session over the given transport.
func (s *Server) Connect(ctx context.Context, transport sdk.Transport) (*sdk.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Run serves clients on stdin/stdout until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &sdk.StdioTransport{})
}
