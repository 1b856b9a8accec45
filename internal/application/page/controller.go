package page

import (
	"context"
	"sync"

	"jma-forecast/internal/domain/usecase/forecast"
	"jma-forecast/internal/domain/usecase/region"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"

	"go.uber.org/zap"
)

// Observer receives every view a controller publishes. Observers run while the
// controller is locked and must not call back into it.
type Observer func(View)

// Controller owns the state of one page and drives it through catalog loading
// and region selections.
type Controller struct {
	mu        sync.Mutex
	state     State
	regions   region.UseCase
	forecasts forecast.UseCase
	observers []Observer
}

func NewController(regions region.UseCase, forecasts forecast.UseCase, observers ...Observer) *Controller {
	return &Controller{
		regions:   regions,
		forecasts: forecasts,
		observers: observers,
	}
}

// Start loads the region catalog. Once loaded, later calls only render; after a
// failed load each call retries it.
func (c *Controller) Start(ctx context.Context) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase != PhaseInitial && c.state.Phase != PhaseCatalogFailed {
		return Render(c.state)
	}

	c.state.Phase = PhaseCatalogLoading
	c.publish()

	catalog, err := c.regions.Load(ctx)
	if err != nil || catalog.IsEmpty() {
		c.state.Phase = PhaseCatalogFailed
	} else {
		c.state.Catalog = catalog
		c.state.Phase = PhaseCatalogReady
	}
	return c.publish()
}

// Select shows the forecast of the region registered under code. Empty or
// unknown codes, and selections before the catalog is ready, leave the page unchanged.
func (c *Controller) Select(ctx context.Context, code string) View {
	c.mu.Lock()
	if code == "" || !c.state.Phase.selectable() {
		defer c.mu.Unlock()
		return Render(c.state)
	}
	if _, ok := c.state.Catalog.Find(code); !ok {
		defer c.mu.Unlock()
		return Render(c.state)
	}

	c.state.Generation++
	generation := c.state.Generation
	c.state.Selected = code
	c.state.Forecast = nil
	c.state.Phase = PhaseForecastLoading
	c.publish()
	c.mu.Unlock()

	entries, err := c.forecasts.Load(ctx, code)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.state.Generation {
		log.Info(msg.GetMessage("forecast.stale", code, generation, c.state.Generation),
			zap.String("region", code),
			zap.Uint64("generation", generation),
		)
		return Render(c.state)
	}

	if err != nil {
		c.state.Phase = PhaseForecastFailed
	} else {
		c.state.Forecast = entries
		c.state.Phase = PhaseForecastReady
	}
	return c.publish()
}

// View renders the current state
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Render(c.state)
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) publish() View {
	view := Render(c.state)
	for _, observer := range c.observers {
		observer(view)
	}
	return view
}
