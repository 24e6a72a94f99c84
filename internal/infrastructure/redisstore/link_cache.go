package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
	"github.com/sportsconnect/sportsconnect-api/pkg/helpers"
)

const linkCacheKey = "cache:university_links"

// LinkCache stores the university name -> link map as one JSON value.
type LinkCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewLinkCache(rdb redis.Cmdable, ttl time.Duration) *LinkCache {
	return &LinkCache{rdb: rdb, ttl: ttl}
}

func (c *LinkCache) Get(ctx context.Context) (map[string]string, bool, error) {
	var links map[string]string
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, linkCacheKey, &links)
	if err != nil || !ok {
		return nil, false, err
	}
	return links, true, nil
}

func (c *LinkCache) Set(ctx context.Context, links map[string]string) error {
	return helpers.RedisSetJSON(ctx, c.rdb, linkCacheKey, links, c.ttl)
}

func (c *LinkCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, linkCacheKey).Err()
}

var _ application.LinkCache = (*LinkCache)(nil)
