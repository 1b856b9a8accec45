package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/usecase/forecast"
	"jma-forecast/internal/domain/usecase/region"
)

type RegionController struct {
	api             *echo.Group
	regionUseCase   region.UseCase
	forecastUseCase forecast.UseCase
}

// ForecastResponse is the JSON body of the forecast endpoint
type ForecastResponse struct {
	Region  entity.Region          `json:"region"`
	Entries []entity.ForecastEntry `json:"entries"`
	Lines   []string               `json:"lines"`
}

func NewRegionController(api *echo.Group, regionUseCase region.UseCase, forecastUseCase forecast.UseCase) *RegionController {
	return &RegionController{api: api, regionUseCase: regionUseCase, forecastUseCase: forecastUseCase}
}

// InitRegionRoutes initializes the JSON api routes
func (controller *RegionController) InitRegionRoutes() {
	controller.api.GET("/api/regions", controller.FindAllRegions)
	controller.api.GET("/api/regions/:code/forecast", controller.FindForecast)
}

// FindAllRegions returns the region catalog in dropdown order
func (controller *RegionController) FindAllRegions(c echo.Context) error {
	catalog, err := controller.regionUseCase.Load(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, catalog.Regions)
}

// FindForecast returns the forecast lines of one region
func (controller *RegionController) FindForecast(c echo.Context) error {
	code := c.Param("code")
	if !entity.IsRegionCode(code) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid region code"})
	}

	catalog, err := controller.regionUseCase.Load(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	selected, ok := catalog.Find(code)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "region not found"})
	}

	entries, err := controller.forecastUseCase.Load(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, forecast.ErrInvalidRegionCode) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Line())
	}

	return c.JSON(http.StatusOK, ForecastResponse{Region: selected, Entries: entries, Lines: lines})
}
