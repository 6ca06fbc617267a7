package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
	"github.com/redis/go-redis/v9"
)

// PageCache stores JSON-encoded result pages in Redis.
type PageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, prefix string, ttl time.Duration) *PageCache {
	return &PageCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key is <prefix><scope>:<limit>:<offset>:<query>. The scope names the table, e.g. the KG id.
func (c *PageCache) Key(scope string, window searchquery.Window) string {
	query, _ := searchquery.Encode(&window.Query)
	return c.prefix + scope + ":" + strconv.Itoa(window.Limit) + ":" + strconv.Itoa(window.Offset) + ":" + query
}

// Get decodes the cached value into dest. The boolean is false on a miss.
func (c *PageCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

func (c *PageCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key under the cache prefix and returns how many were removed.
func (c *PageCache) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()

	var batch []string
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("failed to delete cache keys: %w", err)
		}
		deleted += n
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return deleted, flush()
}
