package analysis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kapu/chess-moves-go/pkg/movedto"
)

// Cache stores finished analysis responses in Redis keyed by board digest.
// Generation is deterministic, so a hit is always byte-equivalent to a fresh
// run.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) key(digest string) string { return "moves:analysis:" + digest }

func (c *Cache) Get(ctx context.Context, digest string) (*movedto.AnalyzeResponse, error) {
	raw, err := c.rdb.Get(ctx, c.key(digest)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var resp movedto.AnalyzeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Cache) Set(ctx context.Context, digest string, resp *movedto.AnalyzeResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(digest), raw, c.ttl).Err()
}
