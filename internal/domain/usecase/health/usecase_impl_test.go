package health

import (
	"context"
	"testing"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/gateway/cache"
	"jma-forecast/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

type fakeRegionUseCase struct {
	status model.HealthStatus
}

func (f fakeRegionUseCase) Load(context.Context) (entity.Catalog, error) {
	return entity.Catalog{}, nil
}

func (f fakeRegionUseCase) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

type fakeCache struct {
	cache.NoopRegionCache
	status model.HealthStatus
}

func (f fakeCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

func TestCheckHealth(t *testing.T) {
	testCases := []struct {
		name     string
		catalog  model.HealthStatus
		cache    cache.RegionCache
		expected model.HealthStatus
	}{
		{"catalog loaded, cache disabled", model.StatusUp, nil, model.StatusUp},
		{"catalog loaded, cache up", model.StatusUp, fakeCache{status: model.StatusUp}, model.StatusUp},
		{"catalog loaded, cache down", model.StatusUp, fakeCache{status: model.StatusDown}, model.StatusDown},
		{"catalog missing", model.StatusDown, nil, model.StatusDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response := NewHealthUseCase(fakeRegionUseCase{status: tc.catalog}, tc.cache).CheckHealth(context.Background())

			assert.Equal(t, tc.expected, response.Status)
			assert.Equal(t, tc.catalog, response.Catalog.Status)
		})
	}
}
