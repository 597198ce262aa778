package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/youtube"
)

type fakeSearcher struct {
	calls   int
	results []youtube.Video
	err     error
}

func (f *fakeSearcher) SearchCreativeCommons(ctx context.Context, query string, maxResults int) ([]youtube.Video, error) {
	f.calls++
	return f.results, f.err
}

func newCache(t *testing.T, inner youtube.Searcher) (*SearchCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSearchCache(rdb, inner, time.Minute, logging.Discard()), mr
}

func TestSearchCacheMissThenHit(t *testing.T) {
	inner := &fakeSearcher{results: []youtube.Video{{ID: "v1", Title: "変身シーン集"}}}
	c, _ := newCache(t, inner)

	ctx := context.Background()

	videos, err := c.SearchCreativeCommons(ctx, "precure", 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, 1, inner.calls)

	// second lookup is served from redis
	videos, err = c.SearchCreativeCommons(ctx, "precure", 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, 1, inner.calls)
}

func TestSearchCacheExpiry(t *testing.T) {
	inner := &fakeSearcher{results: []youtube.Video{{ID: "v1"}}}
	c, mr := newCache(t, inner)

	ctx := context.Background()
	_, err := c.SearchCreativeCommons(ctx, "precure", 5)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.SearchCreativeCommons(ctx, "precure", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "expired entry triggers a live search")
}

func TestSearchCacheInnerError(t *testing.T) {
	inner := &fakeSearcher{err: fmt.Errorf("API returned status 500")}
	c, _ := newCache(t, inner)

	_, err := c.SearchCreativeCommons(context.Background(), "precure", 5)
	require.Error(t, err)
}

func TestSearchCacheCorruptEntry(t *testing.T) {
	inner := &fakeSearcher{results: []youtube.Video{{ID: "v1"}}}
	c, mr := newCache(t, inner)

	require.NoError(t, mr.Set(keyPrefix+"precure", "{corrupt"))

	videos, err := c.SearchCreativeCommons(context.Background(), "precure", 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, 1, inner.calls, "corrupt entry falls through to a live search")
}

func TestSearchCacheRedisDown(t *testing.T) {
	inner := &fakeSearcher{results: []youtube.Video{{ID: "v1"}}}
	c, mr := newCache(t, inner)
	mr.Close()

	// cache failures never surface; the wrapped searcher answers
	videos, err := c.SearchCreativeCommons(context.Background(), "precure", 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
}
