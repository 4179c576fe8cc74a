package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { Redis = nil })
	return mr
}

type cachedRow struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func TestCacheRoundTrip(t *testing.T) {
	newTestCache(t)
	ctx := context.Background()

	var missed []cachedRow
	found, err := GetFromCache(ctx, "scoreboard:c1", &missed)
	require.NoError(t, err)
	assert.False(t, found)

	rows := []cachedRow{{Username: "alice", Score: 10}, {Username: "bob", Score: 30}}
	require.NoError(t, SetToCache(ctx, "scoreboard:c1", rows, time.Minute))

	var got []cachedRow
	found, err = GetFromCache(ctx, "scoreboard:c1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rows, got)
}

func TestCacheDelete(t *testing.T) {
	newTestCache(t)
	ctx := context.Background()

	require.NoError(t, SetToCache(ctx, "scoreboard:c1", []cachedRow{{Username: "alice"}}, time.Minute))
	require.NoError(t, DeleteFromCache(ctx, "scoreboard:c1"))

	var got []cachedRow
	found, err := GetFromCache(ctx, "scoreboard:c1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, SetToCache(ctx, "scoreboard:c1", []cachedRow{{Username: "alice"}}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got []cachedRow
	found, err := GetFromCache(ctx, "scoreboard:c1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheDisabledWithoutClient(t *testing.T) {
	Redis = nil
	ctx := context.Background()

	require.NoError(t, SetToCache(ctx, "k", "v", time.Minute))
	require.NoError(t, DeleteFromCache(ctx, "k"))

	var got string
	found, err := GetFromCache(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
