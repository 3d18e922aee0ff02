package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CacheManager owns the per-prefix helpers and connection-level operations.
type CacheManager struct {
	client  *redis.Client
	Course  *CacheHelper
	Stats   *CacheHelper
	Content *CacheHelper
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		client:  client,
		Course:  NewCacheHelper(client, CourseCacheConfig.Prefix),
		Stats:   NewCacheHelper(client, StatsCacheConfig.Prefix),
		Content: NewCacheHelper(client, ContentCacheConfig.Prefix),
	}
}

// HealthCheck verifies the Redis connection.
func (m *CacheManager) HealthCheck(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	if _, err := m.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("cache ping failed: %w", err)
	}
	return nil
}

// ClearAll flushes every key under the managed prefixes.
func (m *CacheManager) ClearAll(ctx context.Context) error {
	for _, h := range []*CacheHelper{m.Course, m.Stats, m.Content} {
		if err := h.InvalidatePattern(ctx, "*"); err != nil {
			return err
		}
	}
	return nil
}
