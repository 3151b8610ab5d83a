// Package main provides the entrypoint for the SkyCast API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/api"
	"github.com/skycast/skycast/internal/api/middleware"
	"github.com/skycast/skycast/internal/config"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/location/ipapi"
	geocoding "github.com/skycast/skycast/internal/location/openweathermap"
	"github.com/skycast/skycast/internal/provider/resilience"
	"github.com/skycast/skycast/internal/session"
	"github.com/skycast/skycast/internal/telemetry"
	"github.com/skycast/skycast/internal/weather"
	"github.com/skycast/skycast/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "skycast-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting SkyCast API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	upstreamMetrics, err := middleware.NewUpstreamMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize upstream metrics")
		os.Exit(1)
	}

	// Resilient clients per upstream; each self-registers with the registry
	// and reports request outcomes, feeding the ops status endpoint
	registry := resilience.NewRegistry()

	weatherClientCfg := resilience.DefaultClientConfig(openweathermap.ProviderName)
	weatherClientCfg.Timeout = cfg.WeatherTimeout
	weatherClientCfg.Registry = registry
	weatherClientCfg.Metrics = upstreamMetrics
	weatherHTTP := resilience.NewClient(weatherClientCfg)

	geoClientCfg := resilience.DefaultClientConfig(geocoding.ProviderName)
	geoClientCfg.Timeout = cfg.WeatherTimeout
	geoClientCfg.Registry = registry
	geoClientCfg.Metrics = upstreamMetrics
	geoHTTP := resilience.NewClient(geoClientCfg)

	ipClientCfg := resilience.DefaultClientConfig(ipapi.ProviderName)
	ipClientCfg.Timeout = cfg.GeoIPTimeout
	ipClientCfg.Registry = registry
	ipClientCfg.Metrics = upstreamMetrics
	ipHTTP := resilience.NewClient(ipClientCfg)

	// Initialize location service
	locationService := location.NewService(location.ServiceConfig{
		Resolver: geocoding.NewClient(geocoding.ClientConfig{
			APIKey:     cfg.OpenWeatherAPIKey,
			BaseURL:    cfg.GeocodingBaseURL,
			HTTPClient: geoHTTP,
			Logger:     log,
		}),
		Locator: ipapi.NewClient(ipapi.ClientConfig{
			BaseURL:    cfg.GeoIPBaseURL,
			HTTPClient: ipHTTP,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("location service initialized")

	// Initialize weather service
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: openweathermap.NewClient(openweathermap.ClientConfig{
			APIKey:     cfg.OpenWeatherAPIKey,
			BaseURL:    cfg.WeatherBaseURL,
			HTTPClient: weatherHTTP,
			Logger:     log,
		}),
		Logger: log,
	})
	log.Info().Msg("weather service initialized")

	// Initialize session store with a background expiry sweep
	sessionStore := session.NewStore(session.StoreConfig{
		IdleTTL: cfg.SessionIdleTTL,
		Logger:  log,
	})
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(cfg.SessionIdleTTL)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				sessionStore.Sweep(sweepCtx)
			}
		}
	}()
	log.Info().Msg("session store initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		Registry:        registry,
		LocationService: locationService,
		WeatherService:  weatherService,
		SessionStore:    sessionStore,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
