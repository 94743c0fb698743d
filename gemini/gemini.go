// Package gemini implements the model-backed pipeline collaborators
// (llmstxt.LinkExtractor, llmstxt.LinkRanker, llmstxt.Classifier,
// llmstxt.Excerpter) using Google Gemini structured output.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/llmstxt"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for all calls.
const DefaultModel = "gemini-2.5-flash"

// LinkListSchema is the response schema for calls that return a sequence of
// documentation links: url, title, and description per record.
func LinkListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"url":         {Type: genai.TypeString, Description: "URL to the documentation"},
				"title":       {Type: genai.TypeString, Description: "Title of the link"},
				"description": {Type: genai.TypeString, Description: "Brief description of the content expected there"},
			},
			Required: []string{"url", "title", "description"},
		},
	}
}

// BuildLinkListConfig returns the GenerateContentConfig for structured
// link-sequence calls.
func BuildLinkListConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   LinkListSchema(),
	}
}

// DecodeLinks parses a structured link-sequence response.
func DecodeLinks(text string) ([]llmstxt.DocLink, error) {
	var links []llmstxt.DocLink
	if err := json.Unmarshal([]byte(stripFences(text)), &links); err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINTERNAL, "decoding link response: %v", err)
	}
	return links, nil
}

// stripFences removes a markdown code fence wrapper, which models sometimes
// emit around JSON despite the response MIME type.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// Client pairs a genai client with the model it targets. All pipeline
// collaborators in this package share one Client.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a new Client. An empty model selects DefaultModel.
func NewClient(genaiClient *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{genai: genaiClient, model: model}
}

// generate performs one model call and returns the response text.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", llmstxt.Errorf(llmstxt.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}
