package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const catalogPrefix = "catalog:"

// Client caches catalog reads (product and category lists) so storefront
// traffic does not hit Postgres on every page open.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SetCatalog stores a JSON-encoded catalog value under a catalog key with TTL
func (c *Client) SetCatalog(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog value: %w", err)
	}
	return c.rdb.Set(ctx, catalogPrefix+key, data, ttl).Err()
}

// GetCatalog loads a catalog value into dest. Returns false on a cache miss.
func (c *Client) GetCatalog(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, catalogPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal catalog value: %w", err)
	}
	return true, nil
}

// InvalidateCatalog drops every cached catalog entry. Called after any product
// or category write.
func (c *Client) InvalidateCatalog(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, catalogPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
