package entity

import "strings"

// ForecastEntry is the weather outlook for one sub-area of a region.
type ForecastEntry struct {
	AreaCode string   `json:"areaCode"`
	AreaName string   `json:"areaName"`
	Weathers []string `json:"weathers"`
}

// Line formats the entry as "<area name>: <weathers joined by ', '>".
func (e ForecastEntry) Line() string {
	return e.AreaName + ": " + strings.Join(e.Weathers, ", ")
}
