// Package weather fetches current conditions and short-range forecasts from
// an upstream provider and reduces forecast series to daily points.
package weather

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Weather errors.
var (
	// ErrUnavailable signals a malformed or incomplete provider response.
	// Callers surface a generic failure instead of fabricating readings.
	ErrUnavailable = errors.New("weather data unavailable")

	// ErrLocationNotFound signals the provider does not know the requested
	// place, typically a 404 for an unmatched query.
	ErrLocationNotFound = errors.New("weather location not found")

	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrInvalidLocationRef  = errors.New("invalid location reference")
)

// Units is the measurement scale for temperature and wind readings. It is
// passed through to the provider verbatim and never changes control flow.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits validates a units parameter. The empty string defaults to
// metric.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case "":
		return UnitsMetric, nil
	case UnitsMetric:
		return UnitsMetric, nil
	case UnitsImperial:
		return UnitsImperial, nil
	default:
		return "", fmt.Errorf("unknown units %q", s)
	}
}

// LocationRef identifies the place a fetch targets: either coordinates or a
// free-text query already resolved upstream. Both variants map onto the same
// provider contract, differing only in which identifying parameter is sent.
type LocationRef struct {
	lat      float64
	lon      float64
	query    string
	byCoords bool
}

// ByCoords creates a coordinate-keyed location reference.
func ByCoords(lat, lon float64) LocationRef {
	return LocationRef{lat: lat, lon: lon, byCoords: true}
}

// ByQuery creates a query-keyed location reference.
func ByQuery(query string) LocationRef {
	return LocationRef{query: query}
}

// Validate checks the reference is usable: coordinates in range, or a
// non-empty query.
func (r LocationRef) Validate() error {
	if r.byCoords {
		if r.lat < -90 || r.lat > 90 || r.lon < -180 || r.lon > 180 {
			return ErrInvalidLocationRef
		}
		return nil
	}
	if r.query == "" {
		return ErrInvalidLocationRef
	}
	return nil
}

// Apply sets the identifying provider parameter: lat+lon or q.
func (r LocationRef) Apply(params url.Values) {
	if r.byCoords {
		params.Set("lat", fmt.Sprintf("%.6f", r.lat))
		params.Set("lon", fmt.Sprintf("%.6f", r.lon))
		return
	}
	params.Set("q", r.query)
}

// String renders the reference for logging.
func (r LocationRef) String() string {
	if r.byCoords {
		return fmt.Sprintf("%.4f,%.4f", r.lat, r.lon)
	}
	return r.query
}

// Condition represents the general weather condition.
type Condition string

const (
	ConditionClear        Condition = "CLEAR"
	ConditionClouds       Condition = "CLOUDS"
	ConditionRain         Condition = "RAIN"
	ConditionDrizzle      Condition = "DRIZZLE"
	ConditionThunderstorm Condition = "THUNDERSTORM"
	ConditionSnow         Condition = "SNOW"
	ConditionMist         Condition = "MIST"
	ConditionFog          Condition = "FOG"
	ConditionHaze         Condition = "HAZE"
	ConditionUnknown      Condition = "UNKNOWN"
)

// Icon returns the pictograph shown next to the condition.
func (c Condition) Icon() string {
	switch c {
	case ConditionClear:
		return "☀️"
	case ConditionClouds:
		return "☁️"
	case ConditionRain:
		return "🌧"
	case ConditionDrizzle:
		return "🌦"
	case ConditionThunderstorm:
		return "⛈"
	case ConditionSnow:
		return "❄️"
	case ConditionMist, ConditionHaze:
		return "🌫"
	case ConditionFog:
		return "🌁"
	default:
		return "🌍"
	}
}

// IsPrecipitation reports whether the condition involves rain of any kind.
func (c Condition) IsPrecipitation() bool {
	switch c {
	case ConditionRain, ConditionDrizzle, ConditionThunderstorm:
		return true
	default:
		return false
	}
}

// CurrentConditions is a snapshot of the weather at a location. Fetched
// fresh per request, never cached.
type CurrentConditions struct {
	Condition   Condition
	Description string

	Temperature float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64

	// Humidity percentage (0-100)
	Humidity float64

	// Atmospheric pressure in hPa
	Pressure float64

	// Wind speed in the scale of Units
	WindSpeed float64

	Units Units

	ObservedAt time.Time
	FetchedAt  time.Time
}

// ForecastSample is one timestamped temperature reading in a forecast
// series, typically at 3-hour resolution over 5 days.
type ForecastSample struct {
	Time        time.Time
	Temperature float64
}

// Forecast is a multi-point forecast series for one location.
type Forecast struct {
	Samples   []ForecastSample
	Units     Units
	FetchedAt time.Time
}

// DailyPoint is one representative temperature per calendar date, derived
// from a forecast series.
type DailyPoint struct {
	// Date in YYYY-MM-DD form.
	Date string

	Temperature float64
}
