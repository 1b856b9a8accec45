package region

import (
	"context"
	"errors"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/model"
)

// ErrCatalogUnavailable is returned when area.json could not be fetched or carries no offices
var ErrCatalogUnavailable = errors.New("region catalog unavailable")

type UseCase interface {
	// Load returns the region catalog. The first successful load is kept for the
	// lifetime of the process; failures are retried on the next call.
	Load(ctx context.Context) (entity.Catalog, error)

	// Health reports whether the catalog is loaded
	Health() model.ComponentHealthStatus
}
