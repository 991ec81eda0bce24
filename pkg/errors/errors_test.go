package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	typed := Clone(ErrNotFound, "worksheet not found")
	wrapped := fmt.Errorf("load: %w", typed)

	got := FromError(wrapped)
	assert.Equal(t, "NOT_FOUND", got.Code)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "worksheet not found", got.Message)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	got := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Contains(t, got.Error(), "boom")
	assert.Nil(t, FromError(nil))
}

func TestClonedErrorsMatchByCode(t *testing.T) {
	clone := Clone(ErrCacheMiss, "")
	assert.True(t, errors.Is(clone, ErrCacheMiss))
	assert.False(t, errors.Is(clone, ErrNotFound))
}
