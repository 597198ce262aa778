// Package cache puts a Redis read-through cache in front of the video
// search collaborator. A cache failure is never fatal: the wrapped searcher
// is always consulted when Redis misbehaves.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirakira-dev/precure-chat-bot/logging"
	"github.com/kirakira-dev/precure-chat-bot/youtube"
)

// DefaultTTL keeps search results warm for an hour. Creative Commons search
// results churn slowly, so a long TTL is safe.
const DefaultTTL = time.Hour

const keyPrefix = "precure:search:"

// SearchCache implements youtube.Searcher around another Searcher.
type SearchCache struct {
	rdb    *redis.Client
	inner  youtube.Searcher
	ttl    time.Duration
	logger *logging.Logger
}

// NewSearchCache wraps inner with a Redis cache. A zero ttl uses DefaultTTL.
func NewSearchCache(rdb *redis.Client, inner youtube.Searcher, ttl time.Duration, logger *logging.Logger) *SearchCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SearchCache{
		rdb:    rdb,
		inner:  inner,
		ttl:    ttl,
		logger: logger,
	}
}

// SearchCreativeCommons returns the cached result list for query if one is
// present, otherwise defers to the wrapped searcher and stores its answer.
func (s *SearchCache) SearchCreativeCommons(ctx context.Context, query string, maxResults int) ([]youtube.Video, error) {
	key := keyPrefix + query

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var videos []youtube.Video
		if jsonErr := json.Unmarshal(raw, &videos); jsonErr == nil {
			s.logger.Debug("search cache hit", "query", query, "results", len(videos))
			return videos, nil
		}
		// Corrupt entry: drop it and fall through to a live search.
		s.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		s.logger.Warn("search cache unavailable", "error", err.Error())
	}

	videos, err := s.inner.SearchCreativeCommons(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(videos); jsonErr == nil {
		if setErr := s.rdb.Set(ctx, key, raw, s.ttl).Err(); setErr != nil {
			s.logger.Warn("failed to store search cache entry", "error", setErr.Error())
		}
	}
	return videos, nil
}
