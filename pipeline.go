package llmstxt

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// docPathHints marks sitemap URLs worth probing for a manifest.
var docPathHints = []string{"docs", "documentation", "doc", "api", "reference", "guide"}

// maxSitemapCandidates caps how many sitemap URLs are added to the stage 2
// probe list.
const maxSitemapCandidates = 5

// Pipeline executes the documentation discovery fallback chain: direct
// manifest lookup, link discovery from the raw page, a classifier-gated
// content-cleaning fallback, and finally manifest processing. Stages are
// mutually exclusive; the first stage to produce content terminates the
// pipeline. Execution is strictly sequential, including per-link fetches.
//
// Only Fetcher, Locator, and Ranker are required. Leaving the remaining
// collaborators nil disables the corresponding behavior: a pipeline with
// only the required fields degenerates to direct manifest fetch-and-rank.
type Pipeline struct {
	// Fetcher retrieves pages and linked content. Required.
	Fetcher Fetcher

	// Locator probes conventional manifest locations. Required.
	Locator *Locator

	// Ranker selects manifest links relevant to the query. Required.
	Ranker LinkRanker

	// Extractor discovers documentation links in page content.
	// Nil disables stage 2.
	Extractor LinkExtractor

	// Classifier gates the content-cleaning fallback. Nil disables stage 3.
	Classifier Classifier

	// Excerpter extracts query-relevant excerpts when stage 3 finds cleaned
	// content but no links.
	Excerpter Excerpter

	// Reader is the content-cleaning proxy used by stage 3.
	Reader Reader

	// Cleaner extracts main content locally when the proxy read is absent.
	Cleaner Extractor

	// Converter turns HTML pages into markdown before model calls and
	// output. Nil leaves content as fetched.
	Converter Converter

	// Sitemaps contributes additional stage 2 probe candidates. Optional.
	Sitemaps SitemapSource

	// NewVisited returns a fresh probed-URL filter for each invocation, so
	// probe dedup never leaks between Run calls on a long-lived pipeline.
	// Optional; nil leaves the Locator's own filter in place.
	NewVisited func() VisitedFilter

	// Limiter is awaited before each outbound fetch. Optional.
	Limiter DomainLimiter

	// Logger receives stage-transition logs. Defaults to slog.Default().
	Logger *slog.Logger

	// PromptChars overrides the content budget for model calls.
	// Defaults to MaxPromptChars.
	PromptChars int
}

// Run executes the fallback chain for a target URL and query and returns
// the assembled documentation text. All fetch and model failures are
// absorbed; the only error returned is EINVALID for an empty URL. When no
// stage produces content the result is the fixed not-found message.
//
// The progress callback, if non-nil, observes stage transitions.
func (p *Pipeline) Run(ctx context.Context, rawURL, query string, progress ProgressFunc) (string, error) {
	if rawURL == "" {
		return "", Errorf(EINVALID, "url required")
	}

	target := NormalizeURL(rawURL)
	logger := p.logger().With("invocation", uuid.NewString(), "url", target)
	locator := p.locator()

	// Stage 1: direct manifest lookup.
	p.notify(ctx, logger, progress, "Looking for llms.txt or related files at "+target)
	manifest, err := locator.Find(ctx, target)
	if err != nil {
		manifest = nil
	}

	// Stage 2: discover links on the raw page and probe each for a manifest.
	if manifest == nil && p.Extractor != nil {
		p.notify(ctx, logger, progress, "llms.txt not found, looking for documentation links...")
		manifest = p.discoverManifest(ctx, logger, progress, locator, target)
	}

	// Stage 3: classifier-gated content-cleaning fallback.
	if manifest == nil && p.Classifier != nil {
		p.notify(ctx, logger, progress, "No llms.txt found, checking if this is a developer tool...")
		if out, ok := p.fallback(ctx, logger, progress, target, query); ok {
			return out, nil
		}
	}

	// Stage 4: manifest processing.
	if manifest != nil {
		p.notify(ctx, logger, progress, "Found llms.txt at "+manifest.URL+", selecting relevant links...")
		return p.processManifest(ctx, logger, progress, manifest, query), nil
	}

	return NotFoundMessage(target), nil
}

// discoverManifest fetches the target page, extracts candidate
// documentation links (plus sitemap candidates), and probes each through
// the locator until a manifest is found or the set is exhausted.
func (p *Pipeline) discoverManifest(ctx context.Context, logger *slog.Logger, progress ProgressFunc, locator *Locator, target string) *Manifest {
	page := p.fetch(ctx, logger, target)
	if page == "" {
		return nil
	}

	links := p.extractLinks(ctx, logger, p.markdown(logger, page), target)
	links = append(links, p.sitemapCandidates(ctx, logger, target)...)

	for _, link := range links {
		p.notify(ctx, logger, progress, "Checking "+link.URL+" for llms.txt...")
		manifest, err := locator.Find(ctx, link.URL)
		if err == nil {
			return manifest
		}
	}
	return nil
}

// fallback runs stage 3. The boolean result reports whether the stage
// produced a final answer.
func (p *Pipeline) fallback(ctx context.Context, logger *slog.Logger, progress ProgressFunc, target, query string) (string, bool) {
	cleaned := p.cleanContent(ctx, logger, target)
	if cleaned == "" {
		// Absent content short-circuits to "not a developer tool" without
		// invoking the model.
		return "", false
	}

	isDev, err := p.Classifier.IsDeveloperDocs(ctx, Truncate(cleaned, p.budget()))
	if err != nil {
		logger.Debug("classifier call failed", "error", err)
		return "", false
	}
	if !isDev {
		return "", false
	}

	p.notify(ctx, logger, progress, "URL appears to be a developer tool, extracting documentation from cleaned content...")
	links := p.extractLinks(ctx, logger, cleaned, target)
	if len(links) > 0 {
		return p.fetchAndFormat(ctx, logger, progress, links), true
	}

	if p.Excerpter != nil {
		excerpt, err := p.Excerpter.Excerpt(ctx, cleaned, query)
		if err != nil {
			logger.Debug("excerpt call failed", "error", err)
		} else if excerpt != "" {
			return FormatRelevantInfo(target, excerpt), true
		}
	}
	return "", false
}

// processManifest runs stage 4: rank the manifest's links against the
// query, fetch each ranked link sequentially, and format the results.
func (p *Pipeline) processManifest(ctx context.Context, logger *slog.Logger, progress ProgressFunc, manifest *Manifest, query string) string {
	links, err := p.Ranker.RankLinks(ctx, manifest.Content, query)
	if err != nil {
		logger.Debug("ranking call failed", "error", err)
	}
	if len(links) == 0 {
		return NoRelevantLinksMessage
	}
	return p.fetchAndFormat(ctx, logger, progress, ResolveLinks(links, manifest.URL))
}

// fetchAndFormat fetches each link's content one at a time, in the order
// given, and emits one formatted block per link. Absent fetches produce a
// placeholder block rather than being dropped.
func (p *Pipeline) fetchAndFormat(ctx context.Context, logger *slog.Logger, progress ProgressFunc, links []DocLink) string {
	blocks := make([]string, 0, len(links))
	for _, link := range links {
		p.notify(ctx, logger, progress, "Fetching linked content from "+link.URL+"...")
		content := p.fetch(ctx, logger, link.URL)
		if content == "" {
			blocks = append(blocks, FormatFetchFailure(link.URL))
			continue
		}
		blocks = append(blocks, FormatSection(link, p.markdown(logger, content)))
	}
	return strings.Join(blocks, "\n")
}

// fetch performs one rate-limited GET, collapsing every failure to absence.
func (p *Pipeline) fetch(ctx context.Context, logger *slog.Logger, url string) string {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, Host(url)); err != nil {
			return ""
		}
	}
	content, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Debug("fetch absent", "target", url, "error", err)
		return ""
	}
	return content
}

// cleanContent obtains cleaned page content for stage 3: the proxy first,
// then a local extraction of the raw page. Returns "" when neither works.
func (p *Pipeline) cleanContent(ctx context.Context, logger *slog.Logger, target string) string {
	if p.Reader != nil {
		cleaned, err := p.Reader.Read(ctx, target)
		if err == nil && cleaned != "" {
			return cleaned
		}
		if err != nil {
			logger.Debug("proxy read absent", "error", err)
		}
	}

	if p.Cleaner == nil {
		return ""
	}
	html := p.fetch(ctx, logger, target)
	if html == "" {
		return ""
	}
	result, err := p.Cleaner.Extract(html)
	if err != nil {
		logger.Debug("local content extraction failed", "error", err)
		return ""
	}
	return p.markdown(logger, result.ContentHTML)
}

// extractLinks invokes the link extractor on truncated content and resolves
// relative URLs against the page. Extraction failures yield no links.
func (p *Pipeline) extractLinks(ctx context.Context, logger *slog.Logger, content, pageURL string) []DocLink {
	if p.Extractor == nil {
		return nil
	}
	links, err := p.Extractor.ExtractLinks(ctx, Truncate(content, p.budget()), pageURL)
	if err != nil {
		logger.Debug("link extraction failed", "error", err)
		return nil
	}
	return ResolveLinks(links, pageURL)
}

// sitemapCandidates returns documentation-looking sitemap URLs as extra
// stage 2 probe candidates.
func (p *Pipeline) sitemapCandidates(ctx context.Context, logger *slog.Logger, target string) []DocLink {
	if p.Sitemaps == nil {
		return nil
	}
	urls, err := p.Sitemaps.DiscoverURLs(ctx, Origin(target))
	if err != nil {
		logger.Debug("sitemap discovery failed", "error", err)
		return nil
	}
	var links []DocLink
	for _, u := range urls {
		if !looksLikeDocURL(u) {
			continue
		}
		links = append(links, DocLink{URL: u})
		if len(links) == maxSitemapCandidates {
			break
		}
	}
	return links
}

func (p *Pipeline) markdown(logger *slog.Logger, content string) string {
	if p.Converter == nil || !looksLikeHTML(content) {
		return content
	}
	md, err := p.Converter.Convert(content)
	if err != nil {
		logger.Debug("markdown conversion failed", "error", err)
		return content
	}
	return md
}

func (p *Pipeline) notify(ctx context.Context, logger *slog.Logger, progress ProgressFunc, message string) {
	logger.Info(message)
	if progress != nil {
		progress(ctx, message)
	}
}

func (p *Pipeline) budget() int {
	if p.PromptChars > 0 {
		return p.PromptChars
	}
	return MaxPromptChars
}

// locator returns the locator for one invocation. With NewVisited set, a
// copy of the configured Locator carrying a fresh filter is used instead of
// the shared one.
func (p *Pipeline) locator() *Locator {
	if p.NewVisited == nil {
		return p.Locator
	}
	locator := *p.Locator
	locator.Visited = p.NewVisited()
	return &locator
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// looksLikeHTML reports whether content is an HTML document rather than
// plain text or markdown.
func looksLikeHTML(content string) bool {
	head := strings.ToLower(Truncate(strings.TrimSpace(content), 512))
	return strings.HasPrefix(head, "<!doctype") ||
		strings.Contains(head, "<html") ||
		strings.Contains(head, "<body")
}

// looksLikeDocURL reports whether a URL path suggests documentation.
func looksLikeDocURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, hint := range docPathHints {
		if strings.Contains(lower, "/"+hint+"/") || strings.HasSuffix(lower, "/"+hint) {
			return true
		}
	}
	return false
}
