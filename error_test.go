package pageaudit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pageaudit.Errorf(pageaudit.EUNAVAILABLE, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, pageaudit.EUNAVAILABLE, pageaudit.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", pageaudit.ErrorMessage(err))
	assert.Equal(t, "HTTP 404 for https://example.com", err.Error())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, pageaudit.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("sitemap: %w", pageaudit.Errorf(pageaudit.EINVALID, "bad xml"))
		assert.Equal(t, pageaudit.EINVALID, pageaudit.ErrorCode(err))
		assert.Equal(t, "bad xml", pageaudit.ErrorMessage(err))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		assert.Equal(t, pageaudit.EINTERNAL, pageaudit.ErrorCode(err))
		assert.Equal(t, "boom", pageaudit.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pageaudit.ErrorMessage(nil))
}
