package api

import (
	"context"

	"jma-forecast/internal/domain/model/external"
)

// JMAGateway defines the calls made against the JMA bosai endpoints
type JMAGateway interface {
	// GetAreaCatalog fetches the area catalog (area.json)
	GetAreaCatalog(ctx context.Context) (*external.AreaCatalogResponse, error)

	// GetForecast fetches the forecast documents of one office
	// areaCode: the office code, substituted into the forecast path template
	GetForecast(ctx context.Context, areaCode string) ([]external.ForecastResponse, error)
}
