package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jma-forecast/configs"
	"jma-forecast/internal/application/middleware"
	"jma-forecast/internal/application/page"
	"jma-forecast/internal/application/session"
	"jma-forecast/internal/domain/entity"
	"jma-forecast/internal/domain/model"
	"jma-forecast/internal/domain/usecase/forecast"
	"jma-forecast/internal/domain/usecase/region"
)

const cookieName = "jma_session"

func TestMain(m *testing.M) {
	configs.MustLoad()
	os.Exit(m.Run())
}

type stubRegions struct {
	catalog entity.Catalog
	err     error
}

func (s stubRegions) Load(context.Context) (entity.Catalog, error) {
	return s.catalog, s.err
}

func (s stubRegions) Health() model.ComponentHealthStatus {
	if s.err != nil {
		return model.ComponentHealthStatus{Status: model.StatusDown}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

// switchableRegions fails until err is cleared
type switchableRegions struct {
	mu  sync.Mutex
	err error
}

func (s *switchableRegions) Load(context.Context) (entity.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return entity.Catalog{}, s.err
	}
	return catalog, nil
}

func (s *switchableRegions) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func (s *switchableRegions) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

type stubForecasts struct {
	entries map[string][]entity.ForecastEntry
	err     error
	calls   []string
}

func (s *stubForecasts) Load(_ context.Context, code string) ([]entity.ForecastEntry, error) {
	s.calls = append(s.calls, code)
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[code], nil
}

type stubHealth struct {
	response model.HealthResponse
}

func (s stubHealth) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

var catalog = entity.NewCatalog([]entity.Region{
	{Code: "130000", Name: "東京都"},
	{Code: "270000", Name: "大阪府"},
})

var entries = map[string][]entity.ForecastEntry{
	"130000": {
		{AreaCode: "130010", AreaName: "Tokyo", Weathers: []string{"Sunny", "Cloudy"}},
		{AreaCode: "270000", AreaName: "Osaka", Weathers: []string{"Rainy"}},
	},
}

func newServer(regions region.UseCase, forecasts forecast.UseCase) *echo.Echo {
	e := echo.New()
	e.Renderer = NewTemplateRenderer()
	api := e.Group("")

	store := session.NewStore(func() *page.Controller {
		return page.NewController(regions, forecasts)
	}, time.Minute)

	NewPageController(api, middleware.Session(store, cookieName)).InitPageRoutes()
	NewRegionController(api, regions, forecasts).InitRegionRoutes()
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFindAllRegions(t *testing.T) {
	e := newServer(stubRegions{catalog: catalog}, &stubForecasts{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var regions []entity.Region
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	require.Len(t, regions, 2)
	assert.Equal(t, "130000", regions[0].Code)
	assert.Equal(t, "大阪府", regions[1].Name)
}

func TestFindAllRegionsUnavailable(t *testing.T) {
	e := newServer(stubRegions{err: region.ErrCatalogUnavailable}, &stubForecasts{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), region.ErrCatalogUnavailable.Error())
}

func TestFindForecast(t *testing.T) {
	forecasts := &stubForecasts{entries: entries}
	e := newServer(stubRegions{catalog: catalog}, forecasts)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/regions/130000/forecast", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var response ForecastResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "東京都", response.Region.Name)
	assert.Equal(t, []string{"Tokyo: Sunny, Cloudy", "Osaka: Rainy"}, response.Lines)
	assert.Len(t, response.Entries, 2)
	assert.Equal(t, []string{"130000"}, forecasts.calls)
}

func TestFindForecastErrors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		regions   stubRegions
		forecasts *stubForecasts
		status    int
	}{
		{
			name:      "invalid code",
			path:      "/api/regions/abc/forecast",
			regions:   stubRegions{catalog: catalog},
			forecasts: &stubForecasts{},
			status:    http.StatusBadRequest,
		},
		{
			name:      "unknown region",
			path:      "/api/regions/999999/forecast",
			regions:   stubRegions{catalog: catalog},
			forecasts: &stubForecasts{},
			status:    http.StatusNotFound,
		},
		{
			name:      "catalog unavailable",
			path:      "/api/regions/130000/forecast",
			regions:   stubRegions{err: region.ErrCatalogUnavailable},
			forecasts: &stubForecasts{},
			status:    http.StatusServiceUnavailable,
		},
		{
			name:      "fetch failure",
			path:      "/api/regions/130000/forecast",
			regions:   stubRegions{catalog: catalog},
			forecasts: &stubForecasts{err: fmt.Errorf("%w: %w", forecast.ErrForecastUnavailable, errors.New("boom"))},
			status:    http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newServer(tt.regions, tt.forecasts)

			rec := serve(e, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			if tt.status != http.StatusBadGateway {
				assert.Empty(t, tt.forecasts.calls)
			}
		})
	}
}

func TestIndexRendersCatalog(t *testing.T) {
	e := newServer(stubRegions{catalog: catalog}, &stubForecasts{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "日本気象庁 地域別天気予報")
	assert.Contains(t, body, `<option value="130000">東京都</option>`)
	assert.Contains(t, body, `<option value="270000">大阪府</option>`)
	assert.Contains(t, body, `data-phase="catalog-ready"`)
	assert.NotContains(t, body, "データを取得中...")

	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, cookieName, rec.Result().Cookies()[0].Name)
}

func TestIndexCatalogFailure(t *testing.T) {
	e := newServer(stubRegions{err: region.ErrCatalogUnavailable}, &stubForecasts{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<li class="error">データを取得できませんでした。</li>`)
	assert.Equal(t, 1, strings.Count(body, "<option "))
}

func TestIndexRecoversSessionAfterCatalogOutage(t *testing.T) {
	regions := &switchableRegions{err: region.ErrCatalogUnavailable}
	e := newServer(regions, &stubForecasts{})

	first := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Contains(t, first.Body.String(), `data-phase="catalog-failed"`)
	require.Len(t, first.Result().Cookies(), 1)
	cookie := first.Result().Cookies()[0]

	regions.restore()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-phase="catalog-ready"`)
	assert.Contains(t, body, `<option value="130000">東京都</option>`)
	assert.NotContains(t, body, "データを取得できませんでした。")
	assert.Empty(t, rec.Result().Cookies())
}

func TestIndexSelectsRegionFromQuery(t *testing.T) {
	forecasts := &stubForecasts{entries: entries}
	e := newServer(stubRegions{catalog: catalog}, forecasts)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/?region=130000", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<li class=\"\">Tokyo: Sunny, Cloudy</li>")
	assert.Contains(t, body, "<li class=\"\">Osaka: Rainy</li>")
	assert.Contains(t, body, `<option value="130000" selected>東京都</option>`)
	assert.Equal(t, []string{"130000"}, forecasts.calls)
}

func TestSelectKeepsSessionState(t *testing.T) {
	forecasts := &stubForecasts{entries: entries}
	e := newServer(stubRegions{catalog: catalog}, forecasts)

	first := serve(e, httptest.NewRequest(http.MethodGet, "/?region=130000", nil))
	require.Len(t, first.Result().Cookies(), 1)
	cookie := first.Result().Cookies()[0]

	// an empty selection leaves the previous forecast on the page
	form := url.Values{"region": {""}}
	req := httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(cookie)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tokyo: Sunny, Cloudy")
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, []string{"130000"}, forecasts.calls)

	// selecting another region clears the previous lines
	form = url.Values{"region": {"270000"}}
	req = httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(cookie)
	rec = serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Tokyo: Sunny, Cloudy")
	assert.Equal(t, []string{"130000", "270000"}, forecasts.calls)
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		status model.HealthStatus
		code   int
	}{
		{name: "up", status: model.StatusUp, code: http.StatusOK},
		{name: "down", status: model.StatusDown, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			NewHealthController(e.Group(""), stubHealth{response: model.HealthResponse{Status: tt.status}}).InitHealthRoutes()

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), string(tt.status))
		})
	}
}
