package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/llmstxt"
	"google.golang.org/genai"
)

// Ensure Classifier implements llmstxt.Classifier at compile time.
var _ llmstxt.Classifier = (*Classifier)(nil)

// Classifier decides whether page content is developer documentation using
// a boolean structured-output call.
type Classifier struct {
	client *Client
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *Client) *Classifier {
	return &Classifier{client: client}
}

// IsDeveloperDocs reports whether the content looks like documentation for
// a developer tool, API, library, or framework.
func (c *Classifier) IsDeveloperDocs(ctx context.Context, content string) (bool, error) {
	if content == "" {
		return false, nil
	}

	text, err := c.client.generate(ctx, BuildClassifyPrompt(content), BuildClassifyConfig())
	if err != nil {
		return false, err
	}
	return DecodeClassification(text)
}

// BuildClassifyConfig returns the GenerateContentConfig for the boolean
// classification call.
func BuildClassifyConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"developer_docs": {
					Type:        genai.TypeBoolean,
					Description: "True if the webpage is documentation for a developer tool, else false",
				},
			},
			Required: []string{"developer_docs"},
		},
	}
}

// BuildClassifyPrompt builds the classification instruction.
func BuildClassifyPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following webpage content and determine if it appears to be documentation for a developer tool, API, library, framework, or software development resource. ")
	sb.WriteString("Focus on identifying technical terminology, code examples, API reference materials, installation instructions, or other indicators of developer documentation.\n\n")
	fmt.Fprintf(&sb, "<webpage-content>\n%s\n</webpage-content>\n\n", content)
	sb.WriteString("Return true if this is likely developer documentation, or false if not.")
	return sb.String()
}

// DecodeClassification parses the boolean classification response.
func DecodeClassification(text string) (bool, error) {
	var result struct {
		DeveloperDocs bool `json:"developer_docs"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &result); err != nil {
		return false, llmstxt.Errorf(llmstxt.EINTERNAL, "decoding classification response: %v", err)
	}
	return result.DeveloperDocs, nil
}
