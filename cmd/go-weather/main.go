package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-weather/configs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/events"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/widget"
	pkghttp "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// @title go-weather API
// @version 1.0
// @description Weather lookup widget backend: city search, autocomplete suggestions and geolocation.
// @BasePath /go-weather
func main() {
	defer func() { _ = log.Sync() }()
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	apiKey := configs.Env.OpenWeatherAPIKey
	if apiKey == "" {
		log.Warn(msg.GetMessage("app.missing-api-key"))
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	middleware.SetupValidator(e)
	group := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateways
	clientOptions := pkghttp.ClientOptions{
		ConnectionTimeout:   resource.GetDuration("app.http.connection-timeout"),
		ReadTimeout:         resource.GetDuration("app.http.read-timeout"),
		MaxIdleConnsPerHost: resource.GetInt("app.http.max-idle-conns-per-host"),
		Logger:              pkghttp.NewZapLogger("appid"),
	}
	nominatimOptions := clientOptions
	nominatimOptions.DefaultHeaders = map[string]string{"User-Agent": resource.GetString("app.nominatim.user-agent")}

	weatherGateway := api.NewWeatherGateway(resource.GetString("app.openweather.url"), apiKey, resource.GetString("app.openweather.units"), clientOptions)
	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.openweather.geo-url"), apiKey, clientOptions)
	reverseGateway := api.NewReverseGeocodingGateway(resource.GetString("app.nominatim.url"), nominatimOptions)

	publisher, closePublisher := newStatePublisher()
	defer closePublisher()

	// Init UseCase
	widgetUseCase := widget.NewWidgetUseCase(widget.Config{
		SuggestionMinLength: resource.GetInt("app.widget.suggestion-min-length"),
		SuggestionLimit:     resource.GetInt("app.widget.suggestion-limit"),
	}, weatherGateway, geocodingGateway, reverseGateway, publisher)
	healthUseCase := health.NewHealthUseCase(widgetUseCase, publisher)

	// Init Controller
	widgetController := controller.NewWidgetController(group, widgetUseCase, resource.GetString("app.widget.asset-base-url"))
	healthController := controller.NewHealthController(group, healthUseCase)
	swaggerController := controller.NewSwaggerController(group)

	// Init Routes
	widgetController.InitWidgetRoutes()
	healthController.InitHealthRoutes()
	swaggerController.InitSwaggerRoutes()

	// Init Schedule
	sessionScheduler, err := schedule.NewSessionScheduler(widgetUseCase,
		resource.GetString("app.widget.session.eviction-cron"),
		resource.GetDuration("app.widget.session.idle-ttl"))
	if err != nil {
		log.Fatal(msg.GetMessage("schedule.eviction.failed"), zap.Error(err))
	}
	if err = sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("schedule.eviction.failed"), zap.Error(err))
	}
	defer func() { _ = sessionScheduler.Stop() }()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info(msg.GetMessage("app.stopping"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}
}

// newStatePublisher returns the redis publisher when events are enabled, otherwise a no-op one
func newStatePublisher() (events.StatePublisher, func()) {
	if !resource.GetBool("app.events.enabled") {
		return events.NewNopStatePublisher(), func() {}
	}

	client, err := redis.NewClient(redis.NewRedisConfigFromProperties("app.redis"))
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}
	if err = client.Ping(context.Background()); err != nil {
		log.Warn("Redis is not reachable, state events will fail until it is", zap.Error(err))
	}

	publisher := events.NewRedisStatePublisher(client,
		resource.GetString("app.events.namespace"),
		resource.GetString("app.events.channel"))
	return publisher, func() { _ = client.Close() }
}
