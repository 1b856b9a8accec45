package cache

import (
	"context"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/model"
)

// RegionCache stores the region catalog between process restarts
type RegionCache interface {
	// Get returns the cached regions; found is false on a miss
	Get(ctx context.Context) (regions []entity.Region, found bool, err error)

	// Put stores regions in display order
	Put(ctx context.Context, regions []entity.Region) error

	Health(ctx context.Context) model.ComponentHealthStatus
}

// NoopRegionCache is used when caching is disabled
type NoopRegionCache struct{}

var _ RegionCache = NoopRegionCache{}

func (NoopRegionCache) Get(context.Context) ([]entity.Region, bool, error) {
	return nil, false, nil
}

func (NoopRegionCache) Put(context.Context, []entity.Region) error {
	return nil
}

func (NoopRegionCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "cache disabled"},
	}
}
