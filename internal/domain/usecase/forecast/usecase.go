package forecast

import (
	"context"
	"errors"

	"jma-forecast/internal/domain/entity"
)

var (
	// ErrForecastUnavailable is returned when the forecast could not be fetched or has no areas
	ErrForecastUnavailable = errors.New("forecast unavailable")

	// ErrInvalidRegionCode is returned for codes that are not JMA office codes
	ErrInvalidRegionCode = errors.New("invalid region code")
)

type UseCase interface {
	// Load fetches the forecast of one region and returns the areas of its
	// first time-series block, in document order
	Load(ctx context.Context, regionCode string) ([]entity.ForecastEntry, error)
}
