package mcp_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/llmstxt"
	llmsmcp "github.com/fwojciec/llmstxt/mcp"
	"github.com/fwojciec/llmstxt/mock"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPipeline serves a fixed manifest and one linked page through mocks.
func testPipeline() *llmstxt.Pipeline {
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			switch url {
			case "https://example.com/llms.txt":
				return "manifest content", nil
			case "https://example.com/guide.md":
				return "guide body", nil
			}
			return "", llmstxt.Errorf(llmstxt.ENOTFOUND, "HTTP 404 for %s", url)
		},
	}
	ranker := &mock.LinkRanker{
		RankLinksFn: func(_ context.Context, manifest, query string) ([]llmstxt.DocLink, error) {
			return []llmstxt.DocLink{
				{URL: "https://example.com/guide.md", Title: "Guide", Description: "the guide"},
			}, nil
		},
	}
	return &llmstxt.Pipeline{
		Fetcher: fetcher,
		Locator: &llmstxt.Locator{Fetcher: fetcher},
		Ranker:  ranker,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// connect wires the server to an in-memory client session.
func connect(t *testing.T, server *llmsmcp.Server) *sdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := sdk.NewInMemoryTransports()

	_, err := server.Connect(ctx, serverTransport)
	require.NoError(t, err)

	client := sdk.NewClient(&sdk.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func TestServer_ParseLlmsTxt(t *testing.T) {
	t.Parallel()

	t.Run("tool is listed", func(t *testing.T) {
		t.Parallel()

		session := connect(t, llmsmcp.NewServer(testPipeline()))

		tools, err := session.ListTools(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, tools.Tools, 1)
		assert.Equal(t, "parse_llms_txt", tools.Tools[0].Name)
	})

	t.Run("returns formatted documentation", func(t *testing.T) {
		t.Parallel()

		session := connect(t, llmsmcp.NewServer(testPipeline()))

		result, err := session.CallTool(context.Background(), &sdk.CallToolParams{
			Name: "parse_llms_txt",
			Arguments: map[string]any{
				"url":   "example.com",
				"query": "how to install",
			},
		})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*sdk.TextContent)
		require.True(t, ok)
		assert.Equal(t, "# Guide\nthe guide\n\nguide body\n---\n", text.Text)
	})

	t.Run("returns not-found message when nothing resolves", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", llmstxt.Errorf(llmstxt.ENOTFOUND, "HTTP 404 for %s", url)
			},
		}
		p := &llmstxt.Pipeline{
			Fetcher: fetcher,
			Locator: &llmstxt.Locator{Fetcher: fetcher},
			Ranker: &mock.LinkRanker{
				RankLinksFn: func(_ context.Context, manifest, query string) ([]llmstxt.DocLink, error) {
					return nil, nil
				},
			},
			Logger: slog.New(slog.DiscardHandler),
		}

		session := connect(t, llmsmcp.NewServer(p))

		result, err := session.CallTool(context.Background(), &sdk.CallToolParams{
			Name: "parse_llms_txt",
			Arguments: map[string]any{
				"url":   "https://nodocs.example.com",
				"query": "anything",
			},
		})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(*sdk.TextContent)
		require.True(t, ok)
		assert.Equal(t, llmstxt.NotFoundMessage("https://nodocs.example.com"), text.Text)
	})

	t.Run("empty url is a tool error", func(t *testing.T) {
		t.Parallel()

		session := connect(t, llmsmcp.NewServer(testPipeline()))

		result, err := session.CallTool(context.Background(), &sdk.CallToolParams{
			Name: "parse_llms_txt",
			Arguments: map[string]any{
				"url":   "",
				"query": "anything",
			},
		})

		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
