package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/edubridge-backend/internal/clients/cache"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

type aiCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewAICache connects to Redis and returns a cache.Cache whose entries expire after ttl.
func NewAICache(log *logger.Logger, addr string, ttl time.Duration) (cache.Cache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &aiCache{
		log: log.With("service", "RedisAICache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *aiCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return raw, true, nil
}

func (c *aiCache) Set(ctx context.Context, key string, val []byte) error {
	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *aiCache) Backend() string { return "redis" }

// Close releases the connection pool.
func (c *aiCache) Close() error {
	return c.rdb.Close()
}
