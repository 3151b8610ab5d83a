// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// Environment name (development, staging, production).
	Environment string

	// OpenWeatherAPIKey authenticates geocoding and weather calls (required).
	OpenWeatherAPIKey string

	// WeatherBaseURL overrides the weather API base URL (optional).
	WeatherBaseURL string

	// GeocodingBaseURL overrides the geocoding API base URL (optional).
	GeocodingBaseURL string

	// GeoIPBaseURL overrides the IP geolocation base URL (optional).
	GeoIPBaseURL string

	// WeatherTimeout is the per-call budget for weather upstreams.
	WeatherTimeout time.Duration

	// GeoIPTimeout is the per-call budget for IP geolocation.
	GeoIPTimeout time.Duration

	// SessionIdleTTL is the inactivity window before sessions expire.
	SessionIdleTTL time.Duration

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled toggles OTLP export.
	TelemetryEnabled bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENWEATHER_API_KEY is required")
	}

	cfg := &Config{
		Port:              getEnv("APP_PORT", "8080"),
		Environment:       getEnv("APP_ENV", "development"),
		OpenWeatherAPIKey: apiKey,
		WeatherBaseURL:    os.Getenv("WEATHER_BASE_URL"),
		GeocodingBaseURL:  os.Getenv("GEOCODING_BASE_URL"),
		GeoIPBaseURL:      os.Getenv("GEOIP_BASE_URL"),
		WeatherTimeout:    getDuration("WEATHER_TIMEOUT", 10*time.Second),
		GeoIPTimeout:      getDuration("GEOIP_TIMEOUT", 5*time.Second),
		SessionIdleTTL:    getDuration("SESSION_IDLE_TTL", 30*time.Minute),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:  getBool("OTEL_ENABLED", false),
	}

	return cfg, nil
}

// getEnv returns the environment value or a default when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses a duration from the environment, falling back on
// absence or parse failure.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getBool parses a boolean from the environment.
func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
