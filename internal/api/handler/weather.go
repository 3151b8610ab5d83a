package handler

import (
	"net/http"
	"strconv"

	"github.com/skycast/skycast/internal/advisory"
	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/weather"
)

// WeatherHandler handles current conditions and forecast endpoints.
type WeatherHandler struct {
	weather *weather.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: svc}
}

// Current handles GET /v1/weather/current - current conditions with advice
// and alert banners.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	ref, units, ok := weatherParams(w, r)
	if !ok {
		return
	}

	current, err := h.weather.CurrentConditions(r.Context(), ref, units)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toCurrentWeatherModel(current))
}

// Forecast handles GET /v1/weather/forecast - daily or full-granularity
// forecast series.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	ref, units, ok := weatherParams(w, r)
	if !ok {
		return
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = "daily"
	}
	if granularity != "daily" && granularity != "full" {
		response.BadRequest(w, r, "invalid granularity", []models.FieldError{
			{Field: "granularity", Message: "must be daily or full"},
		})
		return
	}

	forecast, err := h.weather.Forecast(r.Context(), ref, units)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	body := models.Forecast{
		Units:       string(forecast.Units),
		Granularity: granularity,
	}
	if granularity == "daily" {
		body.Daily = toDailyModel(weather.DailyPoints(forecast.Samples))
	} else {
		for _, s := range weather.FullSeries(forecast.Samples) {
			body.Series = append(body.Series, models.ForecastSample{
				Time:        models.Timestamp(s.Time),
				Temperature: s.Temperature,
			})
		}
	}

	response.JSON(w, r, http.StatusOK, body)
}

// weatherParams parses the location reference and units shared by the
// weather endpoints. On failure it writes a 400 and returns ok=false.
func weatherParams(w http.ResponseWriter, r *http.Request) (weather.LocationRef, weather.Units, bool) {
	params := r.URL.Query()

	units, err := weather.ParseUnits(params.Get("units"))
	if err != nil {
		response.BadRequest(w, r, "invalid units", []models.FieldError{
			{Field: "units", Message: "must be metric or imperial"},
		})
		return weather.LocationRef{}, "", false
	}

	latStr, lonStr := params.Get("lat"), params.Get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			response.BadRequest(w, r, "lat and lon must both be valid numbers", nil)
			return weather.LocationRef{}, "", false
		}
		ref := weather.ByCoords(lat, lon)
		if err := ref.Validate(); err != nil {
			response.BadRequest(w, r, "coordinates out of range", nil)
			return weather.LocationRef{}, "", false
		}
		return ref, units, true
	}

	q := params.Get("q")
	if q == "" {
		response.BadRequest(w, r, "either lat+lon or q is required", nil)
		return weather.LocationRef{}, "", false
	}
	return weather.ByQuery(q), units, true
}

// toCurrentWeatherModel converts conditions to their API representation,
// attaching advice and alert banners.
func toCurrentWeatherModel(c *weather.CurrentConditions) models.CurrentWeather {
	humidity := c.Humidity
	wind := c.WindSpeed
	advice := advisory.Advise(advisory.Reading{
		Temperature: c.Temperature,
		Humidity:    &humidity,
		WindSpeed:   &wind,
	})
	alerts := advisory.Messages(advisory.Classify(c.Condition, c.Temperature, c.WindSpeed))

	return models.CurrentWeather{
		Condition:   string(c.Condition),
		Icon:        c.Condition.Icon(),
		Description: c.Description,
		Temperature: c.Temperature,
		FeelsLike:   c.FeelsLike,
		TempMin:     c.TempMin,
		TempMax:     c.TempMax,
		Humidity:    c.Humidity,
		Pressure:    c.Pressure,
		WindSpeed:   c.WindSpeed,
		Units:       string(c.Units),
		ObservedAt:  models.Timestamp(c.ObservedAt),
		Advice:      advice,
		Alerts:      alerts,
	}
}

// toDailyModel converts daily points to their API representation.
func toDailyModel(points []weather.DailyPoint) []models.DailyForecastEntry {
	entries := make([]models.DailyForecastEntry, 0, len(points))
	for _, p := range points {
		entries = append(entries, models.DailyForecastEntry{
			Date:        p.Date,
			Temperature: p.Temperature,
		})
	}
	return entries
}
