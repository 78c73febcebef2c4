package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

const revokedKeyPrefix = "portfolio:revoked:"

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore keeps revoked token ids until the tokens would have expired anyway.
func NewRedisSessionStore(rdb *redis.Client) service.SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.rdb.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const feedKey = "portfolio:feed:rss"

type redisFeedCache struct {
	rdb *redis.Client
}

func NewRedisFeedCache(rdb *redis.Client) service.FeedCache {
	return &redisFeedCache{rdb: rdb}
}

func (c *redisFeedCache) Get(ctx context.Context) (string, bool, error) {
	doc, err := c.rdb.Get(ctx, feedKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc, true, nil
}

func (c *redisFeedCache) Set(ctx context.Context, doc string, ttl time.Duration) error {
	return c.rdb.Set(ctx, feedKey, doc, ttl).Err()
}

func (c *redisFeedCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, feedKey).Err()
}
