package llmstxt_test

import (
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("adds https scheme to bare domain", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com", llmstxt.NormalizeURL("example.com"))
	})

	t.Run("keeps existing https scheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com/docs", llmstxt.NormalizeURL("https://example.com/docs"))
	})

	t.Run("keeps existing http scheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "http://example.com", llmstxt.NormalizeURL("http://example.com"))
	})
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	t.Run("strips path and query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com", llmstxt.Origin("https://example.com/docs/intro?x=1"))
	})

	t.Run("normalizes bare domain", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com", llmstxt.Origin("example.com/docs"))
	})

	t.Run("preserves port", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "http://localhost:8080", llmstxt.Origin("http://localhost:8080/page"))
	})
}

func TestResolveLinkURL(t *testing.T) {
	t.Parallel()

	t.Run("absolute link is unchanged", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.ResolveLinkURL("https://example.com/start", "https://other.com/docs")
		assert.Equal(t, "https://other.com/docs", got)
	})

	t.Run("root-relative link resolves against origin", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.ResolveLinkURL("https://example.com/start", "/api/ref")
		assert.Equal(t, "https://example.com/api/ref", got)
	})

	t.Run("relative link appends to page URL without trailing slash", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.ResolveLinkURL("https://example.com/start", "ref")
		assert.Equal(t, "https://example.com/start/ref", got)
	})

	t.Run("relative link appends to page URL with trailing slash", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.ResolveLinkURL("https://example.com/start/", "ref")
		assert.Equal(t, "https://example.com/start/ref", got)
	})

	t.Run("never produces a double slash", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.ResolveLinkURL("https://example.com/start/", "ref")
		assert.NotContains(t, got, "start//ref")
	})
}

func TestResolveLinks(t *testing.T) {
	t.Parallel()

	links := []llmstxt.DocLink{
		{URL: "/api", Title: "API"},
		{URL: "guide", Title: "Guide"},
		{URL: "https://example.com/full", Title: "Full"},
	}

	resolved := llmstxt.ResolveLinks(links, "https://example.com/docs")

	assert.Equal(t, "https://example.com/api", resolved[0].URL)
	assert.Equal(t, "https://example.com/docs/guide", resolved[1].URL)
	assert.Equal(t, "https://example.com/full", resolved[2].URL)
	// Titles survive resolution.
	assert.Equal(t, "API", resolved[0].Title)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("cuts content over the budget to exactly the budget", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.Truncate("abcdefgh", 5)
		assert.Equal(t, "abcde", got)
		assert.Len(t, got, 5)
	})

	t.Run("leaves content within the budget unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", llmstxt.Truncate("abc", 5))
	})

	t.Run("budget counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.Truncate("héllo wörld", 5)
		assert.Equal(t, "héllo", got)
	})

	t.Run("never splits a multibyte character", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.Truncate("日本語のドキュメント", 4)
		assert.Equal(t, "日本語の", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("multibyte content within the budget is unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "日本語", llmstxt.Truncate("日本語", 5))
	})
}
