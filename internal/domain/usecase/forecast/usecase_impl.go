package forecast

import (
	"context"
	"fmt"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/gateway/api"
	"jma-forecast/internal/domain/model/external"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"
)

type forecastUseCase struct {
	apiGateway api.JMAGateway
}

func NewForecastUseCase(apiGateway api.JMAGateway) UseCase {
	return &forecastUseCase{apiGateway: apiGateway}
}

func (uc *forecastUseCase) Load(ctx context.Context, regionCode string) ([]entity.ForecastEntry, error) {
	if !entity.IsRegionCode(regionCode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegionCode, regionCode)
	}

	documents, err := uc.apiGateway.GetForecast(ctx, regionCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}

	entries, err := toEntries(documents)
	if err != nil {
		log.Warn(msg.GetMessage("forecast.unavailable", regionCode, err.Error()))
		return nil, err
	}

	log.Info(msg.GetMessage("forecast.loaded", regionCode, len(entries)))
	return entries, nil
}

// toEntries reads the areas of the first time-series block of the first document
func toEntries(documents []external.ForecastResponse) ([]entity.ForecastEntry, error) {
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: empty forecast document", ErrForecastUnavailable)
	}
	if len(documents[0].TimeSeries) == 0 {
		return nil, fmt.Errorf("%w: no time series", ErrForecastUnavailable)
	}

	areas := documents[0].TimeSeries[0].Areas
	if len(areas) == 0 {
		return nil, fmt.Errorf("%w: no areas", ErrForecastUnavailable)
	}

	entries := make([]entity.ForecastEntry, 0, len(areas))
	for _, area := range areas {
		weathers := area.Weathers
		if weathers == nil {
			weathers = []string{}
		}
		entries = append(entries, entity.ForecastEntry{
			AreaCode: area.Area.Code,
			AreaName: area.Area.Name,
			Weathers: weathers,
		})
	}
	return entries, nil
}
