package page

import "jma-forecast/pkg/msg"

// Option is one dropdown entry
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Line is one element of the results area
type Line struct {
	Text string
	// Error marks persistent failure messages
	Error bool
	// Transient marks loading placeholders that the next transition removes
	Transient bool
}

// View is the rendered page: heading, dropdown, results area
type View struct {
	Title   string
	Heading string
	Hint    string
	// LoadingPattern is the forecast loading text with the region name left as {0},
	// for pages that show it before the selection round trip completes
	LoadingPattern string
	Phase          string
	Options        []Option
	Results        []Line
}

// Render derives the view of state. It has no side effects.
func Render(state State) View {
	view := View{
		Title:          msg.GetMessage("page.title"),
		Heading:        msg.GetMessage("page.heading"),
		Hint:           msg.GetMessage("page.hint"),
		LoadingPattern: msg.GetMessage("page.forecast-loading"),
		Phase:          state.Phase.String(),
		Options:        make([]Option, 0, state.Catalog.Len()),
	}

	for _, region := range state.Catalog.Regions {
		view.Options = append(view.Options, Option{
			Value:    region.Code,
			Label:    region.Name,
			Selected: region.Code == state.Selected,
		})
	}

	switch state.Phase {
	case PhaseCatalogLoading:
		view.Results = []Line{{Text: msg.GetMessage("page.catalog-loading"), Transient: true}}
	case PhaseCatalogFailed:
		view.Results = []Line{{Text: msg.GetMessage("page.catalog-failed"), Error: true}}
	case PhaseForecastLoading:
		region, _ := state.SelectedRegion()
		view.Results = []Line{{Text: msg.GetMessage("page.forecast-loading", region.Name), Transient: true}}
	case PhaseForecastReady:
		view.Results = make([]Line, 0, len(state.Forecast))
		for _, entry := range state.Forecast {
			view.Results = append(view.Results, Line{Text: entry.Line()})
		}
	case PhaseForecastFailed:
		view.Results = []Line{{Text: msg.GetMessage("page.forecast-failed"), Error: true}}
	}

	return view
}

// Texts returns the text of every results line
func (v View) Texts() []string {
	texts := make([]string, 0, len(v.Results))
	for _, line := range v.Results {
		texts = append(texts, line.Text)
	}
	return texts
}
