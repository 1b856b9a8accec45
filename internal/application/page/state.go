package page

import "jma-forecast/internal/domain/entity"

// Phase is the position of a page in its load/select lifecycle
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseCatalogLoading
	PhaseCatalogReady
	PhaseCatalogFailed
	PhaseForecastLoading
	PhaseForecastReady
	PhaseForecastFailed
)

var phaseNames = [...]string{
	"initial",
	"catalog-loading",
	"catalog-ready",
	"catalog-failed",
	"forecast-loading",
	"forecast-ready",
	"forecast-failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// selectable reports whether the dropdown accepts selections in this phase
func (p Phase) selectable() bool {
	return p >= PhaseCatalogReady && p != PhaseCatalogFailed
}

// State is everything a page displays. Views are derived from it by Render.
type State struct {
	Phase    Phase
	Catalog  entity.Catalog
	Selected string
	// Generation increases with every accepted selection; a forecast is only
	// applied when its generation is still the current one.
	Generation uint64
	Forecast   []entity.ForecastEntry
}

// SelectedRegion returns the region currently chosen in the dropdown
func (s State) SelectedRegion() (entity.Region, bool) {
	if s.Selected == "" {
		return entity.Region{}, false
	}
	return s.Catalog.Find(s.Selected)
}
