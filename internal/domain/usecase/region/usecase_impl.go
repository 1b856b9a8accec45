package region

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/gateway/api"
	"jma-forecast/internal/domain/gateway/cache"
	"jma-forecast/internal/domain/model"
	"jma-forecast/internal/domain/model/external"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"

	"go.uber.org/zap"
)

type regionUseCase struct {
	mu         sync.Mutex
	apiGateway api.JMAGateway
	cache      cache.RegionCache
	catalog    *entity.Catalog
	lastErr    error
}

func NewRegionUseCase(apiGateway api.JMAGateway, regionCache cache.RegionCache) UseCase {
	if regionCache == nil {
		regionCache = cache.NoopRegionCache{}
	}
	return &regionUseCase{
		apiGateway: apiGateway,
		cache:      regionCache,
	}
}

// Load returns the memoized catalog or fetches it
func (uc *regionUseCase) Load(ctx context.Context) (entity.Catalog, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.catalog != nil {
		return *uc.catalog, nil
	}

	regions, err := uc.fetchRegions(ctx)
	if err != nil {
		uc.lastErr = err
		log.Warn(msg.GetMessage("region.unavailable", err.Error()), zap.Error(err))
		return entity.Catalog{}, err
	}

	catalog := entity.NewCatalog(regions)
	uc.catalog = &catalog
	uc.lastErr = nil
	log.Info(msg.GetMessage("region.loaded", catalog.Len()))

	return catalog, nil
}

// fetchRegions reads the cache first and falls back to area.json
func (uc *regionUseCase) fetchRegions(ctx context.Context) ([]entity.Region, error) {
	cached, found, err := uc.cache.Get(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("region.cache-failed", "read", err.Error()))
	}
	if found && len(cached) > 0 {
		log.Info(msg.GetMessage("region.cache-hit", len(cached)))
		return cached, nil
	}

	response, err := uc.apiGateway.GetAreaCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	regions, err := toRegions(response)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Put(ctx, regions); err != nil {
		log.Warn(msg.GetMessage("region.cache-failed", "write", err.Error()))
	}
	return regions, nil
}

// toRegions extracts offices ordered by code; offices without a name are skipped
func toRegions(response *external.AreaCatalogResponse) ([]entity.Region, error) {
	if response == nil || response.Offices == nil {
		return nil, fmt.Errorf("%w: response has no offices", ErrCatalogUnavailable)
	}

	offices := *response.Offices
	regions := make([]entity.Region, 0, len(offices))
	for code, office := range offices {
		if office.Name == "" {
			log.Warnf("Skipping office %s without a name", code)
			continue
		}
		regions = append(regions, entity.Region{
			Code:       code,
			Name:       office.Name,
			EnName:     office.EnName,
			OfficeName: office.OfficeName,
			Parent:     office.Parent,
		})
	}

	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: offices is empty", ErrCatalogUnavailable)
	}

	sort.Slice(regions, func(i, j int) bool { return regions[i].Code < regions[j].Code })
	return regions, nil
}

func (uc *regionUseCase) Health() model.ComponentHealthStatus {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.catalog != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUp,
			Details: map[string]string{"regions": strconv.Itoa(uc.catalog.Len())},
		}
	}

	details := map[string]string{"message": "catalog not loaded"}
	if uc.lastErr != nil {
		details["message"] = uc.lastErr.Error()
	}
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}
