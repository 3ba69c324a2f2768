// Package cache stores raw AI responses keyed by a digest of the request, so identical
// study-plan and tutor-tip prompts are not sent upstream twice within the TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	// Backend names the implementation for metrics ("redis", "lru").
	Backend() string
}

// Key builds a stable cache key from a kind and an ordered list of request parts.
func Key(kind string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return "edubridge:ai:" + kind + ":" + hex.EncodeToString(h.Sum(nil))[:32]
}

type lruCache struct {
	entries *lru.LRU[string, []byte]
}

// NewLRU returns an in-process cache holding at most size entries for ttl each.
func NewLRU(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = 256
	}
	return &lruCache{entries: lru.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *lruCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (c *lruCache) Set(_ context.Context, key string, val []byte) error {
	c.entries.Add(key, append([]byte(nil), val...))
	return nil
}

func (c *lruCache) Backend() string { return "lru" }
