package health

import (
	"context"

	"jma-forecast/internal/domain/gateway/cache"
	"jma-forecast/internal/domain/model"
	"jma-forecast/internal/domain/usecase/region"
)

type healthUseCase struct {
	regionUseCase region.UseCase
	regionCache   cache.RegionCache
}

func NewHealthUseCase(regionUseCase region.UseCase, regionCache cache.RegionCache) UseCase {
	if regionCache == nil {
		regionCache = cache.NoopRegionCache{}
	}
	return &healthUseCase{
		regionUseCase: regionUseCase,
		regionCache:   regionCache,
	}
}

// CheckHealth is DOWN when the catalog is not loaded or an enabled cache is unreachable
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	catalogHealth := useCase.regionUseCase.Health()
	cacheHealth := useCase.regionCache.Health(ctx)

	overallStatus := model.StatusUp
	if catalogHealth.Status != model.StatusUp || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Catalog: catalogHealth,
		Cache:   cacheHealth,
	}
}
