// Package openweathermap implements the weather provider against the
// OpenWeatherMap current-weather and 5-day forecast APIs.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/provider/resilience"
	"github.com/skycast/skycast/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// sampleTimeLayout is the dt_txt format of forecast entries.
	sampleTimeLayout = "2006-01-02 15:04:05"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// CurrentConditions fetches the current weather for a location reference.
// Responses missing the weather or main substructures are reported as
// weather.ErrUnavailable instead of being decoded into zero values.
func (c *Client) CurrentConditions(ctx context.Context, ref weather.LocationRef, units weather.Units) (*weather.CurrentConditions, error) {
	var owmResp currentWeatherResponse
	if err := c.get(ctx, "/weather", ref, units, &owmResp); err != nil {
		return nil, err
	}

	if len(owmResp.Weather) == 0 || owmResp.Main == nil {
		return nil, weather.ErrUnavailable
	}

	return &weather.CurrentConditions{
		Condition:   mapCondition(owmResp.Weather[0].Main),
		Description: owmResp.Weather[0].Description,
		Temperature: owmResp.Main.Temp,
		FeelsLike:   owmResp.Main.FeelsLike,
		TempMin:     owmResp.Main.TempMin,
		TempMax:     owmResp.Main.TempMax,
		Humidity:    owmResp.Main.Humidity,
		Pressure:    owmResp.Main.Pressure,
		WindSpeed:   owmResp.Wind.Speed,
		Units:       units,
		ObservedAt:  time.Unix(owmResp.Dt, 0),
		FetchedAt:   time.Now(),
	}, nil
}

// Forecast fetches the 3-hourly 5-day forecast for a location reference.
func (c *Client) Forecast(ctx context.Context, ref weather.LocationRef, units weather.Units) (*weather.Forecast, error) {
	var owmResp forecastResponse
	if err := c.get(ctx, "/forecast", ref, units, &owmResp); err != nil {
		return nil, err
	}

	if owmResp.List == nil {
		return nil, weather.ErrUnavailable
	}

	forecast := &weather.Forecast{
		Samples:   make([]weather.ForecastSample, 0, len(owmResp.List)),
		Units:     units,
		FetchedAt: time.Now(),
	}

	for _, entry := range owmResp.List {
		ts, err := time.Parse(sampleTimeLayout, entry.DtTxt)
		if err != nil {
			c.logger.Warn().
				Str("dt_txt", entry.DtTxt).
				Msg("skipping forecast entry with unparsable timestamp")
			continue
		}
		forecast.Samples = append(forecast.Samples, weather.ForecastSample{
			Time:        ts,
			Temperature: entry.Main.Temp,
		})
	}

	return forecast, nil
}

// get issues a GET against an endpoint with the shared parameter contract.
func (c *Client) get(ctx context.Context, path string, ref weather.LocationRef, units weather.Units, out interface{}) error {
	params := url.Values{}
	ref.Apply(params)
	params.Set("appid", c.apiKey)
	params.Set("units", string(units))

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return weather.ErrLocationNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// mapCondition maps the OpenWeatherMap condition group to the domain
// condition.
func mapCondition(owmCondition string) weather.Condition {
	switch owmCondition {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionClouds
	case "Rain":
		return weather.ConditionRain
	case "Drizzle":
		return weather.ConditionDrizzle
	case "Thunderstorm":
		return weather.ConditionThunderstorm
	case "Snow":
		return weather.ConditionSnow
	case "Mist":
		return weather.ConditionMist
	case "Fog":
		return weather.ConditionFog
	case "Haze", "Dust", "Sand", "Ash", "Squall", "Tornado", "Smoke":
		return weather.ConditionHaze
	default:
		return weather.ConditionUnknown
	}
}

// OpenWeatherMap API response structures. Main is a pointer so a missing
// substructure is detectable instead of decoding to zeros.

type currentWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
	Cod  int    `json:"cod"`
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	} `json:"list"`
}
