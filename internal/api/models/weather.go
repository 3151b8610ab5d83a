package models

// CurrentWeather is the response body for current conditions.
type CurrentWeather struct {
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	WindSpeed   float64   `json:"windSpeed"`
	Units       string    `json:"units"`
	ObservedAt  Timestamp `json:"observedAt"`
	Advice      []string  `json:"advice"`
	Alerts      []string  `json:"alerts"`
}

// DailyForecastEntry is one midday sample in a daily forecast.
type DailyForecastEntry struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
}

// ForecastSample is one raw 3-hour sample in a full forecast series.
type ForecastSample struct {
	Time        Timestamp `json:"time"`
	Temperature float64   `json:"temperature"`
}

// Forecast is the response body for the forecast endpoint. Exactly one
// of Daily or Series is populated depending on the requested granularity.
type Forecast struct {
	Units       string               `json:"units"`
	Granularity string               `json:"granularity"`
	Daily       []DailyForecastEntry `json:"daily,omitempty"`
	Series      []ForecastSample     `json:"series,omitempty"`
}

// Dashboard bundles everything the dashboard view needs in one response.
type Dashboard struct {
	SessionID string               `json:"sessionId"`
	Location  Location             `json:"location"`
	Current   CurrentWeather       `json:"current"`
	Forecast  []DailyForecastEntry `json:"forecast"`
}
