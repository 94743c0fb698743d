// Package jina implements llmstxt.Reader using the Jina Reader API, a
// third-party service that fetches a URL and returns a simplified, readable
// extraction of its main content.
package jina

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/llmstxt"
)

// DefaultBaseURL is the Jina Reader endpoint. The target URL, scheme
// stripped, is appended to it.
const DefaultBaseURL = "https://r.jina.ai/"

// Ensure Reader implements llmstxt.Reader at compile time.
var _ llmstxt.Reader = (*Reader)(nil)

// Reader fetches cleaned page content through the Jina Reader proxy.
type Reader struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration
}

// Option configures a Reader.
type Option func(*Reader)

// WithAPIKey sets the API key sent as the x-api-key header.
// Without a key the service still works but is rate limited.
func WithAPIKey(key string) Option {
	return func(r *Reader) {
		r.apiKey = key
	}
}

// WithBaseURL overrides the proxy endpoint. Used in tests.
func WithBaseURL(base string) Option {
	return func(r *Reader) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		r.baseURL = base
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(r *Reader) {
		r.userAgent = ua
	}
}

// WithTimeout sets the timeout for proxy requests.
func WithTimeout(d time.Duration) Option {
	return func(r *Reader) {
		r.timeout = d
	}
}

// NewReader creates a new Reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		baseURL:   DefaultBaseURL,
		userAgent: "llmstxt/1.0",
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.client = &http.Client{Timeout: r.timeout}
	return r
}

// Read fetches the URL through the cleaning proxy and returns the cleaned
// content. The target's scheme is stripped before prefixing the proxy
// endpoint.
func (r *Reader) Read(ctx context.Context, url string) (string, error) {
	target := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", r.userAgent)
	if r.apiKey != "" {
		req.Header.Set("x-api-key", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d from reader proxy for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
