package api

import (
	"context"
	"fmt"

	"jma-forecast/internal/domain/model/external"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type rateLimitedJMAGateway struct {
	gateway JMAGateway
	config  JMAGatewayConfig
	limiter *rate.Limiter
}

// NewRateLimitedJMAGateway wraps gateway with a token bucket of rps requests per second.
// rps <= 0 disables limiting and returns gateway unchanged. config only names the
// URLs in log lines.
func NewRateLimitedJMAGateway(gateway JMAGateway, config JMAGatewayConfig, rps float64, burst int) JMAGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}

	return &rateLimitedJMAGateway{
		gateway: gateway,
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (g *rateLimitedJMAGateway) GetAreaCatalog(ctx context.Context) (*external.AreaCatalogResponse, error) {
	if err := g.wait(ctx, g.config.AreaURL()); err != nil {
		return nil, err
	}
	return g.gateway.GetAreaCatalog(ctx)
}

func (g *rateLimitedJMAGateway) GetForecast(ctx context.Context, areaCode string) ([]external.ForecastResponse, error) {
	if err := g.wait(ctx, g.config.ForecastURL(areaCode)); err != nil {
		return nil, err
	}
	return g.gateway.GetForecast(ctx, areaCode)
}

// wait blocks for a token; an aborted wait is logged as a failed fetch of url
func (g *rateLimitedJMAGateway) wait(ctx context.Context, url string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		message := msg.GetMessage("jma.rate-limit-wait", url, err.Error())
		log.Error(message, zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%s: %w", message, err)
	}
	return nil
}
