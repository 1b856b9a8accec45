package entity

import "jma-forecast/pkg/util/numberutils"

// Region is a JMA forecast office from the area catalog.
type Region struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	EnName     string `json:"enName,omitempty"`
	OfficeName string `json:"officeName,omitempty"`
	Parent     string `json:"parent,omitempty"`
}

// Catalog is the ordered, immutable set of regions loaded at startup.
type Catalog struct {
	Regions []Region `json:"regions"`
	index   map[string]int
}

// NewCatalog indexes regions by code. Regions must already be in display order.
func NewCatalog(regions []Region) Catalog {
	index := make(map[string]int, len(regions))
	for i, region := range regions {
		index[region.Code] = i
	}
	return Catalog{Regions: regions, index: index}
}

// Find returns the region registered under code.
func (c Catalog) Find(code string) (Region, bool) {
	i, ok := c.index[code]
	if !ok {
		return Region{}, false
	}
	return c.Regions[i], true
}

func (c Catalog) Len() int {
	return len(c.Regions)
}

func (c Catalog) IsEmpty() bool {
	return len(c.Regions) == 0
}

// IsRegionCode reports whether code has the shape of a JMA office code.
func IsRegionCode(code string) bool {
	return numberutils.IsDigits(code)
}
