package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

// PageStore caches raw pages. Get reports ok=false on a miss.
type PageStore interface {
	Get(ctx context.Context, key string) (page string, ok bool, err error)
	Set(ctx context.Context, key, page string, ttl time.Duration) error
}

// RedisPageStore keeps pages in Redis with a TTL.
type RedisPageStore struct {
	client *redis.Client
}

// NewRedisPageStore connects and pings the server.
func NewRedisPageStore(ctx context.Context, redisURL string) (*RedisPageStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisPageStore{client: client}, nil
}

func (s *RedisPageStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisPageStore) Set(ctx context.Context, key, page string, ttl time.Duration) error {
	return s.client.Set(ctx, key, page, ttl).Err()
}

func (s *RedisPageStore) Close() error {
	return s.client.Close()
}

// CachedFetcher serves team season pages from a PageStore before falling
// back to Next. Cache errors are logged and otherwise ignored; not-found
// pages are never cached.
type CachedFetcher struct {
	Next   pfr.PageFetcher
	Store  PageStore
	TTL    time.Duration
	Logger *slog.Logger
}

func pageKey(teamPath string, season int) string {
	return fmt.Sprintf("pfr:team:%s:%d", teamPath, season)
}

func (c *CachedFetcher) FetchTeamSeason(ctx context.Context, teamPath string, season int) (string, error) {
	key := pageKey(teamPath, season)
	page, ok, err := c.Store.Get(ctx, key)
	switch {
	case err != nil:
		c.warn("page cache get failed", key, err)
	case ok:
		c.debug("page cache hit", key)
		return page, nil
	}

	page, err = c.Next.FetchTeamSeason(ctx, teamPath, season)
	if err != nil {
		return "", err
	}
	if err := c.Store.Set(ctx, key, page, c.TTL); err != nil {
		c.warn("page cache set failed", key, err)
	}
	return page, nil
}

func (c *CachedFetcher) warn(msg, key string, err error) {
	if c.Logger != nil {
		c.Logger.Warn(msg, "key", key, "error", err)
	}
}

func (c *CachedFetcher) debug(msg, key string) {
	if c.Logger != nil {
		c.Logger.Debug(msg, "key", key)
	}
}
