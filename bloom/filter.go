// Package bloom implements llmstxt.VisitedFilter with a Bloom filter, so
// repeated locator runs within one tool invocation skip manifest candidates
// that were already probed.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/fwojciec/llmstxt"
)

// Defaults sized for one invocation: a discovery pass probes at most a few
// hundred candidate URLs.
const (
	defaultCapacity = 1024
	defaultFPRate   = 0.001
)

// Ensure Filter implements llmstxt.VisitedFilter at compile time.
var _ llmstxt.VisitedFilter = (*Filter)(nil)

// Filter tracks probed URLs. False positives are possible (a candidate may
// be skipped that was never probed); false negatives are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for one invocation's probe volume.
func NewFilter() *Filter {
	return NewFilterWithEstimates(defaultCapacity, defaultFPRate)
}

// NewFilterWithEstimates creates a filter sized for n expected URLs with
// the given false positive rate.
func NewFilterWithEstimates(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as probed.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been probed already.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}
