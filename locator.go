package llmstxt

import (
	"context"
	"strings"
)

// DefaultManifestPaths is the ordered list of conventional llms.txt
// locations probed under a site's origin. The ordering is a policy choice
// and the first hit short-circuits the remaining probes.
var DefaultManifestPaths = []string{
	"llms.txt",
	"docs/llms.txt",
	"documentation/llms.txt",
	"doc/llms.txt",
	"llms-ctx.txt",
	"llms-ctx-full.txt",
	"api/llms.txt",
	"reference/llms.txt",
}

// VisitedFilter tracks URLs that have already been probed, so repeated
// locator runs within one invocation skip duplicate candidates.
// False positives are acceptable; false negatives are not.
type VisitedFilter interface {
	Add(url string)
	Test(url string) bool
}

// Locator probes conventional manifest locations under a URL's origin and
// returns the first manifest found.
type Locator struct {
	// Fetcher performs the candidate probes. Required.
	Fetcher Fetcher

	// Paths overrides DefaultManifestPaths when non-nil.
	Paths []string

	// Visited suppresses candidate URLs already probed. Optional.
	Visited VisitedFilter

	// Limiter is awaited before each probe. Optional.
	Limiter DomainLimiter
}

// Find normalizes the URL, derives its origin, and probes each candidate
// path in order, returning the first non-absent result paired with the
// resolved URL that produced it. If the original URL itself ends in .txt it
// is tried directly as a final candidate. Returns ENOTFOUND when every
// candidate fails.
func (l *Locator) Find(ctx context.Context, rawURL string) (*Manifest, error) {
	target := NormalizeURL(rawURL)
	origin := Origin(target)
	if origin == "" {
		return nil, Errorf(EINVALID, "invalid URL %q", rawURL)
	}

	paths := l.Paths
	if paths == nil {
		paths = DefaultManifestPaths
	}

	candidates := make([]string, 0, len(paths)+1)
	for _, path := range paths {
		candidates = append(candidates, origin+"/"+path)
	}
	if strings.HasSuffix(target, ".txt") {
		candidates = append(candidates, target)
	}

	for _, candidate := range candidates {
		if l.Visited != nil {
			if l.Visited.Test(candidate) {
				continue
			}
			l.Visited.Add(candidate)
		}
		content, err := l.probe(ctx, candidate)
		if err != nil || content == "" {
			continue
		}
		return &Manifest{Content: content, URL: candidate}, nil
	}

	return nil, Errorf(ENOTFOUND, "no llms.txt manifest found for %q", rawURL)
}

func (l *Locator) probe(ctx context.Context, url string) (string, error) {
	if l.Limiter != nil {
		if err := l.Limiter.Wait(ctx, Host(url)); err != nil {
			return "", err
		}
	}
	return l.Fetcher.Fetch(ctx, url)
}
