package llmstxt

import (
	"net/url"
	"strings"
)

// NormalizeURL ensures the URL has a scheme, defaulting to https.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// Origin returns the scheme://host portion of the URL. The input is
// normalized first, so a bare domain yields an https origin. Returns an
// empty string if the URL cannot be parsed.
func Origin(raw string) string {
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Host returns the host portion of the URL, or an empty string if the URL
// cannot be parsed.
func Host(raw string) string {
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return ""
	}
	return u.Host
}

// ResolveLinkURL resolves a possibly-relative link against the page it was
// discovered on. Absolute links are returned unchanged. Root-relative links
// (/x) resolve against the page's origin. Other relative links are appended
// to the page URL with exactly one slash separator, so a trailing slash on
// the page URL neither doubles the separator nor drops a path segment.
func ResolveLinkURL(pageURL, link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if strings.HasPrefix(link, "/") {
		return Origin(pageURL) + link
	}
	return strings.TrimSuffix(pageURL, "/") + "/" + link
}

// ResolveLinks resolves every link's URL against the page URL.
func ResolveLinks(links []DocLink, pageURL string) []DocLink {
	resolved := make([]DocLink, len(links))
	for i, link := range links {
		link.URL = ResolveLinkURL(pageURL, link.URL)
		resolved[i] = link
	}
	return resolved
}
