package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/llmstxt/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter()

	assert.False(t, f.Test("https://example.com/llms.txt"))

	f.Add("https://example.com/llms.txt")

	assert.True(t, f.Test("https://example.com/llms.txt"))
	assert.False(t, f.Test("https://example.com/docs/llms.txt"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilterWithEstimates(100, 0.01)

	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("https://example.com/page-%d", i))
	}
	for i := 0; i < 100; i++ {
		assert.True(t, f.Test(fmt.Sprintf("https://example.com/page-%d", i)))
	}
}
