package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/llmstxt"
)

// maxSitemaps caps recursive sitemap-index resolution so a pathological
// index cannot make one invocation unbounded.
const maxSitemaps = 10

// Ensure SitemapSource implements llmstxt.SitemapSource.
var _ llmstxt.SitemapSource = (*SitemapSource)(nil)

// SitemapSource discovers URLs from website sitemaps via HTTP.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a new SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// DiscoverURLs finds URLs from a site's sitemap. It checks robots.txt for
// sitemap directives first, then falls back to /sitemap.xml, resolving
// sitemap indexes recursively. Returns an empty slice (not nil) when no
// sitemap exists.
func (s *SitemapSource) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(llmstxt.NormalizeURL(baseURL))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid base URL: %v", err)
	}
	base.Path = ""

	sitemapURLs := s.findSitemapURLs(ctx, base)
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, u := range found {
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml.
func (s *SitemapSource) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}
	return []string{base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapSource) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	return sitemaps
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapSource) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] || len(seen) >= maxSitemaps {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen)
	}
	return parseURLSet(root), nil
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *SitemapSource) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var urls []string
	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		childURL := strings.TrimSpace(loc.Text())
		if childURL == "" {
			continue
		}
		found, err := s.processSitemap(ctx, childURL, seen)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		urls = append(urls, found...)
	}
	return urls, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapSource) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}
