package llmstxt_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestFormatSection(t *testing.T) {
	t.Parallel()

	link := llmstxt.DocLink{
		URL:         "https://example.com/docs/start.md",
		Title:       "Getting started",
		Description: "Quick start guide",
	}

	got := llmstxt.FormatSection(link, "Install with pip.")

	assert.Equal(t, "# Getting started\nQuick start guide\n\nInstall with pip.\n---\n", got)
}

func TestFormatFetchFailure(t *testing.T) {
	t.Parallel()

	got := llmstxt.FormatFetchFailure("https://example.com/docs/missing.md")

	assert.Equal(t, "Could not fetch content from https://example.com/docs/missing.md\n---\n", got)
}

func TestFormatRelevantInfo(t *testing.T) {
	t.Parallel()

	got := llmstxt.FormatRelevantInfo("https://example.com", "Use the CLI.")

	assert.Equal(t, "# Relevant information from https://example.com\n\nUse the CLI.", got)
}

func TestNotFoundMessage(t *testing.T) {
	t.Parallel()

	got := llmstxt.NotFoundMessage("https://example.com")

	assert.Equal(t, "Could not find llms.txt or extract documentation from https://example.com.", got)
}
