package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

func TestCacheRepositoryWithoutClientAlwaysMisses(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "matricula:attendance:x", map[string]int{"population": 3}, time.Minute))

	var dest map[string]int
	err := repo.Get(ctx, "matricula:attendance:x", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
	assert.Nil(t, dest)

	assert.NoError(t, repo.DeleteByPattern(ctx, "matricula:*"))
	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}

func TestCacheRepositoryPingUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	repo := NewCacheRepository(client, nil)
	defer repo.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, repo.Ping(ctx))

	err := repo.Get(ctx, "matricula:missing", &struct{}{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, appErrors.ErrCacheMiss)
}
