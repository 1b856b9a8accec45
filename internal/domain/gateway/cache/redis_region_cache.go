package cache

import (
	"context"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/model"
	"jma-forecast/pkg/redis"
)

const catalogKey = "catalog"

type RedisRegionCache struct {
	client *redis.Client
	cache  *redis.Cache
}

var _ RegionCache = (*RedisRegionCache)(nil)

func NewRedisRegionCache(client *redis.Client, opts *redis.CacheOptions) *RedisRegionCache {
	return &RedisRegionCache{
		client: client,
		cache:  redis.NewCache(client, opts),
	}
}

func (c *RedisRegionCache) Get(ctx context.Context) ([]entity.Region, bool, error) {
	var regions []entity.Region
	found, err := c.cache.Get(ctx, catalogKey, &regions)
	if err != nil || !found {
		return nil, false, err
	}
	return regions, true, nil
}

func (c *RedisRegionCache) Put(ctx context.Context, regions []entity.Region) error {
	return c.cache.Set(ctx, catalogKey, regions)
}

func (c *RedisRegionCache) Health(ctx context.Context) model.ComponentHealthStatus {
	check := c.client.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: check.Details}
}
