package external

// AreaCatalogResponse is the subset of area.json the application reads.
// Offices is a pointer so a document without the field can be told apart from an empty one.
type AreaCatalogResponse struct {
	Offices *map[string]OfficeDTO `json:"offices"`
}

// OfficeDTO is one forecast office entry of area.json
type OfficeDTO struct {
	Name       string   `json:"name"`
	EnName     string   `json:"enName"`
	OfficeName string   `json:"officeName"`
	Parent     string   `json:"parent"`
	Children   []string `json:"children"`
}

// ForecastResponse is one top-level forecast document of forecast/{area_code}.json
type ForecastResponse struct {
	PublishingOffice string               `json:"publishingOffice"`
	ReportDatetime   string               `json:"reportDatetime"`
	TimeSeries       []ForecastTimeSeries `json:"timeSeries"`
}

// ForecastTimeSeries groups the area predictions of one forecast horizon
type ForecastTimeSeries struct {
	TimeDefines []string           `json:"timeDefines"`
	Areas       []ForecastAreaData `json:"areas"`
}

// ForecastAreaData holds the predictions for a single area
type ForecastAreaData struct {
	Area struct {
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"area"`
	WeatherCodes []string `json:"weatherCodes,omitempty"`
	Weathers     []string `json:"weathers,omitempty"`
	Winds        []string `json:"winds,omitempty"`
	Waves        []string `json:"waves,omitempty"`
}
