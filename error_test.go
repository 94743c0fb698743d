package llmstxt_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := llmstxt.Errorf(llmstxt.ENOTFOUND, "no manifest found for %q", "example.com")

	assert.Equal(t, llmstxt.ENOTFOUND, llmstxt.ErrorCode(err))
	assert.Equal(t, "no manifest found for \"example.com\"", llmstxt.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, llmstxt.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, llmstxt.EINTERNAL, llmstxt.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, llmstxt.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", llmstxt.ErrorMessage(errors.New("boom")))
}
