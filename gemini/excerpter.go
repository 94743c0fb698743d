package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/llmstxt"
	"google.golang.org/genai"
)

// Ensure Excerpter implements llmstxt.Excerpter at compile time.
var _ llmstxt.Excerpter = (*Excerpter)(nil)

// Excerpter extracts query-relevant sections from documentation content as
// free-form markdown.
type Excerpter struct {
	client *Client
}

// NewExcerpter creates a new Excerpter.
func NewExcerpter(client *Client) *Excerpter {
	return &Excerpter{client: client}
}

// Excerpt returns the parts of content that best answer the query.
func (e *Excerpter) Excerpt(ctx context.Context, content, query string) (string, error) {
	if content == "" {
		return "", llmstxt.Errorf(llmstxt.EINVALID, "content required")
	}
	if query == "" {
		return "", llmstxt.Errorf(llmstxt.EINVALID, "query required")
	}

	return e.client.generate(ctx, BuildExcerptPrompt(content, query), BuildExcerptConfig())
}

// BuildExcerptConfig returns the GenerateContentConfig for the free-text
// excerpt call.
func BuildExcerptConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant extracting relevant sections from developer documentation. Answer based only on the documentation provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildExcerptPrompt builds the excerpt instruction.
func BuildExcerptPrompt(content, query string) string {
	var sb strings.Builder
	sb.WriteString("Below is documentation content for a developer tool. Based on the user's query, extract the most relevant sections that would help answer the query. ")
	sb.WriteString("Format your response as markdown and include code examples when available.\n\n")
	fmt.Fprintf(&sb, "<documentation>\n%s\n</documentation>\n\n", content)
	fmt.Fprintf(&sb, "User query: %s", query)
	return sb.String()
}
