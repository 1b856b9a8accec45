package api

import (
	"context"
	"strings"
	"time"

	"jma-forecast/internal/domain/model/external"
	"jma-forecast/pkg/http"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"

	"go.uber.org/zap"
)

// AreaCodePlaceholder is replaced by the office code in the forecast path template
const AreaCodePlaceholder = "{area_code}"

// JMAGatewayConfig holds the endpoint layout of the JMA API
type JMAGatewayConfig struct {
	BaseURL          string
	AreaPath         string
	ForecastTemplate string
}

// AreaURL returns the absolute URL of area.json
func (c JMAGatewayConfig) AreaURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.AreaPath
}

// ForecastURL returns the absolute forecast URL of areaCode
func (c JMAGatewayConfig) ForecastURL(areaCode string) string {
	return strings.TrimRight(c.BaseURL, "/") + ForecastPath(c.ForecastTemplate, areaCode)
}

type jmaGatewayImpl struct {
	httpClient *http.Client
	config     JMAGatewayConfig
}

// NewJMAGateway creates a new instance of JMAGateway with HTTP client
func NewJMAGateway(config JMAGatewayConfig, clientOptions http.ClientOptions) JMAGateway {
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = map[string]string{"Accept": "application/json"}
	}
	if clientOptions.Logger == nil {
		clientOptions.Logger = zapHTTPLogger{}
	}

	return &jmaGatewayImpl{
		httpClient: http.NewHttpClient(config.BaseURL, clientOptions),
		config:     config,
	}
}

// GetAreaCatalog fetches area.json
func (g *jmaGatewayImpl) GetAreaCatalog(ctx context.Context) (*external.AreaCatalogResponse, error) {
	successResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithPath(g.config.AreaPath).
		WithSuccessResp(&external.AreaCatalogResponse{}).
		Execute()
	if err != nil {
		return nil, err
	}

	return successResp.(*external.AreaCatalogResponse), nil
}

// GetForecast fetches forecast/{area_code}.json
func (g *jmaGatewayImpl) GetForecast(ctx context.Context, areaCode string) ([]external.ForecastResponse, error) {
	successResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithPath(ForecastPath(g.config.ForecastTemplate, areaCode)).
		WithSuccessResp(&[]external.ForecastResponse{}).
		Execute()
	if err != nil {
		return nil, err
	}

	return *successResp.(*[]external.ForecastResponse), nil
}

// ForecastPath substitutes areaCode into template
func ForecastPath(template, areaCode string) string {
	return strings.ReplaceAll(template, AreaCodePlaceholder, areaCode)
}

// zapHTTPLogger reports JMA traffic on the application log; failures carry the URL and the reason
type zapHTTPLogger struct{}

func (zapHTTPLogger) LogRequest(method, url string) {
	log.Debug("jma request", zap.String("method", method), zap.String("url", url))
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration) {
	log.Debug("jma response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
	)
}

func (zapHTTPLogger) LogResponseError(method, url string, httpStatus int, latency time.Duration, err error) {
	log.Error(msg.GetMessage("jma.fetch-failed", url, err.Error()),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err),
	)
}
