package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, "abitur")
	ctx := context.Background()

	var dest map[string]string
	err := repo.Get(ctx, "worksheet:1", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Set(ctx, "worksheet:1", map[string]string{"a": "b"}, time.Minute))
	assert.NoError(t, repo.Delete(ctx, "worksheet:1"))
	assert.NoError(t, repo.Close())
}

func TestCacheRepositoryKeyNamespace(t *testing.T) {
	assert.Equal(t, "abitur:worksheet:1", NewCacheRepository(nil, "abitur").key("worksheet:1"))
	assert.Equal(t, "worksheet:1", NewCacheRepository(nil, "").key("worksheet:1"))
}
