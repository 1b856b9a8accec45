package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jma-forecast/configs"
	"jma-forecast/internal/application/controller"
	"jma-forecast/internal/application/middleware"
	"jma-forecast/internal/application/page"
	"jma-forecast/internal/application/schedule"
	"jma-forecast/internal/application/session"
	apigateway "jma-forecast/internal/domain/gateway/api"
	"jma-forecast/internal/domain/gateway/cache"
	"jma-forecast/internal/domain/usecase/forecast"
	"jma-forecast/internal/domain/usecase/health"
	"jma-forecast/internal/domain/usecase/region"
	httpclient "jma-forecast/pkg/http"
	"jma-forecast/pkg/log"
	"jma-forecast/pkg/msg"
	"jma-forecast/pkg/redis"
	"jma-forecast/pkg/resource"
)

func main() {
	configs.MustLoad()
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	// Init JMAGateway
	jmaConfig := apigateway.JMAGatewayConfig{
		BaseURL:          resource.GetString("app.jma.base-url"),
		AreaPath:         resource.GetString("app.jma.area-path"),
		ForecastTemplate: resource.GetString("app.jma.forecast-path"),
	}
	jmaGateway := apigateway.NewRateLimitedJMAGateway(
		apigateway.NewJMAGateway(jmaConfig, httpclient.ClientOptions{
			ReadTimeout:       resource.GetDuration("app.jma.http.read-timeout"),
			ConnectionTimeout: resource.GetDuration("app.jma.http.connection-timeout"),
		}),
		jmaConfig,
		resource.GetFloat64("app.jma.rate-limit.rps"),
		resource.GetInt("app.jma.rate-limit.burst"),
	)

	// Init RegionCache
	regionCache, closeCache := newRegionCache()
	defer closeCache()

	// Init UseCase
	regionUseCase := region.NewRegionUseCase(jmaGateway, regionCache)
	forecastUseCase := forecast.NewForecastUseCase(jmaGateway)
	healthUseCase := health.NewHealthUseCase(regionUseCase, regionCache)

	// The catalog is loaded before serving; failures are retried by the next session
	if _, err := regionUseCase.Load(context.Background()); err != nil {
		log.Warn(msg.GetMessage("region.unavailable", err.Error()))
	}

	// Init Sessions
	sessionStore := session.NewStore(func() *page.Controller {
		return page.NewController(regionUseCase, forecastUseCase)
	}, resource.GetDurationOrDefault("app.session.idle-timeout", 30*time.Minute))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Renderer = controller.NewTemplateRenderer()
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	api := e.Group(resource.GetString("app.server.context-path"))
	sessionMiddleware := middleware.Session(sessionStore, resource.GetStringOrDefault("app.session.cookie", "jma_session"))

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	pageController := controller.NewPageController(api, sessionMiddleware)
	regionController := controller.NewRegionController(api, regionUseCase, forecastUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	pageController.InitPageRoutes()
	regionController.InitRegionRoutes()

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(sessionStore)
	if err := sessionScheduler.InitSessionScheduleTasks(resource.GetStringOrDefault("app.session.sweep.cron", "@every 5m")); err != nil {
		log.Fatal(err.Error())
	}
	defer sessionScheduler.Stop()

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()
	log.Info(msg.GetMessage("app.started", resource.GetString("app.server.port")))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error(err.Error())
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// newRegionCache returns the Redis backed catalog cache when app.cache.enabled is set
func newRegionCache() (cache.RegionCache, func()) {
	if !resource.GetBool("app.cache.enabled") {
		return cache.NoopRegionCache{}, func() {}
	}

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))
	if err != nil {
		log.Fatal(err.Error())
	}

	options := redis.NewCacheOptions().
		WithCacheName(resource.GetString("app.cache.name")).
		WithTTL(resource.GetDuration("app.cache.ttl"))

	return cache.NewRedisRegionCache(client, options), func() {
		if err := client.Close(); err != nil {
			log.Error(err.Error())
		}
	}
}
