package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// Cache key prefixes and TTLs.
const (
	userKeyPrefix     = "user:"
	negCacheKeySuffix = ":neg"

	// DefaultUserTTL is the TTL for cached user data. Users never change
	// after creation, so the TTL only bounds memory, not staleness.
	DefaultUserTTL = 1 * time.Hour

	// NegativeCacheTTL is the TTL for negative cache entries. Unknown ids
	// (including malformed ones) are remembered briefly so repeated bad
	// lookups skip the database.
	NegativeCacheTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetUser retrieves a user from cache by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUser(ctx context.Context, id string) (*model.CachedUser, error) {
	key := userKeyPrefix + id

	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrCacheMiss
	}

	cached := &model.CachedUser{
		Username:  result["username"],
		CreatedAt: result["created_at"],
	}

	return cached, nil
}

// SetUser stores a user in cache.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	key := userKeyPrefix + user.ID
	cached := user.ToCachedUser()

	fields := map[string]any{
		"username":   cached.Username,
		"created_at": cached.CreatedAt,
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, c.userTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}

	// Remove negative cache if exists
	c.client.Del(ctx, key+negCacheKeySuffix)

	return nil
}

// IsNegativelyCached checks if a user id is in negative cache.
func (c *Cache) IsNegativelyCached(ctx context.Context, id string) (bool, error) {
	key := userKeyPrefix + id + negCacheKeySuffix

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks a user id as not found.
func (c *Cache) SetNegativeCache(ctx context.Context, id string) error {
	key := userKeyPrefix + id + negCacheKeySuffix

	if err := c.client.SetEx(ctx, key, "", NegativeCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}
