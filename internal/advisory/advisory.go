// Package advisory maps weather readings to human-readable guidance and
// alert flags. It is pure and never fails: absent optional inputs simply
// skip their checks.
package advisory

import (
	"github.com/skycast/skycast/internal/weather"
)

// Threshold table. Temperatures are degrees Celsius, wind speeds m/s.
const (
	extremeHeatThreshold  = 38.0
	hotThreshold          = 30.0
	veryColdThreshold     = 8.0
	coolThreshold         = 15.0
	highHumidityThreshold = 80.0
	lowHumidityThreshold  = 30.0
	strongWindThreshold   = 10.0
	coldWaveThreshold     = 5.0
)

// Reading is the input snapshot for advice. Humidity and WindSpeed are
// pointers so a caller can distinguish "not provided" from zero.
type Reading struct {
	Temperature float64
	Humidity    *float64
	WindSpeed   *float64
}

// Advise returns ordered guidance for a reading: exactly one temperature
// message (first threshold match wins), then at most one humidity message
// and at most one wind message.
func Advise(r Reading) []string {
	advice := make([]string, 0, 3)

	switch {
	case r.Temperature >= extremeHeatThreshold:
		advice = append(advice, "Extreme heat, stay hydrated and avoid going out.")
	case r.Temperature >= hotThreshold:
		advice = append(advice, "Hot weather, drink plenty of water.")
	case r.Temperature <= veryColdThreshold:
		advice = append(advice, "Very cold, wear warm clothes.")
	case r.Temperature <= coolThreshold:
		advice = append(advice, "Cool weather, light jacket recommended.")
	default:
		advice = append(advice, "Pleasant temperature.")
	}

	if r.Humidity != nil {
		switch {
		case *r.Humidity >= highHumidityThreshold:
			advice = append(advice, "High humidity, you may feel sticky.")
		case *r.Humidity <= lowHumidityThreshold:
			advice = append(advice, "Low humidity, keep your skin hydrated.")
		}
	}

	if r.WindSpeed != nil && *r.WindSpeed >= strongWindThreshold {
		advice = append(advice, "Strong winds, be cautious outdoors.")
	}

	return advice
}

// Alert is a condition-triggered warning flag for UI banners. Unlike the
// single-winner temperature advisory, all applicable alerts are reported.
type Alert string

const (
	AlertUmbrella   Alert = "UMBRELLA"
	AlertHeatWave   Alert = "HEAT_WAVE"
	AlertColdWave   Alert = "COLD_WAVE"
	AlertStrongWind Alert = "STRONG_WIND"
)

// Message returns the banner text for an alert.
func (a Alert) Message() string {
	switch a {
	case AlertUmbrella:
		return "Rain expected, carry an umbrella."
	case AlertHeatWave:
		return "Heat warning, temperatures at dangerous levels."
	case AlertColdWave:
		return "Cold wave warning, dress for severe cold."
	case AlertStrongWind:
		return "Strong wind caution, be careful outdoors."
	default:
		return ""
	}
}

// NoSevereAlerts is reported when no alert applies.
const NoSevereAlerts = "No severe alerts."

// Classify derives the alert flags for a conditions snapshot. Flags are
// independent: every one that applies is returned, in a fixed order.
func Classify(condition weather.Condition, temperature, windSpeed float64) []Alert {
	var alerts []Alert

	if condition.IsPrecipitation() {
		alerts = append(alerts, AlertUmbrella)
	}
	if temperature >= extremeHeatThreshold {
		alerts = append(alerts, AlertHeatWave)
	}
	if temperature <= coldWaveThreshold {
		alerts = append(alerts, AlertColdWave)
	}
	if windSpeed >= strongWindThreshold {
		alerts = append(alerts, AlertStrongWind)
	}

	return alerts
}

// Messages renders alert flags as banner texts, falling back to
// NoSevereAlerts when none apply.
func Messages(alerts []Alert) []string {
	if len(alerts) == 0 {
		return []string{NoSevereAlerts}
	}
	messages := make([]string, 0, len(alerts))
	for _, a := range alerts {
		messages = append(messages, a.Message())
	}
	return messages
}
