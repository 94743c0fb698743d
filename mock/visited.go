package mock

import "github.com/fwojciec/llmstxt"

var _ llmstxt.VisitedFilter = (*VisitedFilter)(nil)

// VisitedFilter is a mock implementation of llmstxt.VisitedFilter.
type VisitedFilter struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (f *VisitedFilter) Add(url string) {
	f.AddFn(url)
}

func (f *VisitedFilter) Test(url string) bool {
	return f.TestFn(url)
}
