package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Ensure Ranker implements llmstxt.LinkRanker at compile time.
var _ llmstxt.LinkRanker = (*Ranker)(nil)

// Ranker selects the manifest links most relevant to a query using Gemini
// structured output.
type Ranker struct {
	client *Client
}

// NewRanker creates a new Ranker.
func NewRanker(client *Client) *Ranker {
	return &Ranker{client: client}
}

// RankLinks returns the subset of manifest links most relevant to the
// query, in the order the model returns them.
func (r *Ranker) RankLinks(ctx context.Context, manifest, query string) ([]llmstxt.DocLink, error) {
	if manifest == "" {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "manifest content required")
	}

	text, err := r.client.generate(ctx, BuildRankPrompt(manifest, query), BuildLinkListConfig())
	if err != nil {
		return nil, err
	}
	return DecodeLinks(text)
}

// BuildRankPrompt builds the relevance-selection instruction.
func BuildRankPrompt(manifest, query string) string {
	var sb strings.Builder
	sb.WriteString("Given this llms.txt content and user query, analyze which documentation links are most relevant. ")
	sb.WriteString("The llms.txt format is a standardized way to provide LLM-friendly documentation, containing a project overview and links to detailed documentation in markdown format.\n\n")
	fmt.Fprintf(&sb, "<llms-txt>\n%s\n</llms-txt>\n\n", manifest)
	fmt.Fprintf(&sb, "User query: %s", query)
	return sb.String()
}
