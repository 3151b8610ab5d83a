package advisory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/advisory"
	"github.com/skycast/skycast/internal/weather"
)

func ptr(v float64) *float64 { return &v }

func TestAdvise_TemperatureSingleWinner(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        string
	}{
		{name: "extreme heat", temperature: 38, want: "Extreme heat, stay hydrated and avoid going out."},
		{name: "above extreme", temperature: 45, want: "Extreme heat, stay hydrated and avoid going out."},
		{name: "hot", temperature: 30, want: "Hot weather, drink plenty of water."},
		{name: "pleasant", temperature: 20, want: "Pleasant temperature."},
		{name: "cool", temperature: 15, want: "Cool weather, light jacket recommended."},
		{name: "boundary above very cold", temperature: 8.5, want: "Cool weather, light jacket recommended."},
		{name: "very cold", temperature: 8, want: "Very cold, wear warm clothes."},
		{name: "freezing", temperature: -10, want: "Very cold, wear warm clothes."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := advisory.Advise(advisory.Reading{Temperature: tt.temperature})
			require.Len(t, advice, 1, "exactly one temperature message")
			assert.Equal(t, tt.want, advice[0])
		})
	}
}

func TestAdvise_OrderedMessages(t *testing.T) {
	advice := advisory.Advise(advisory.Reading{
		Temperature: 7,
		Humidity:    ptr(85),
		WindSpeed:   ptr(12),
	})

	require.Len(t, advice, 3)
	assert.Equal(t, "Very cold, wear warm clothes.", advice[0])
	assert.Equal(t, "High humidity, you may feel sticky.", advice[1])
	assert.Equal(t, "Strong winds, be cautious outdoors.", advice[2])
}

func TestAdvise_OptionalInputsSkipped(t *testing.T) {
	advice := advisory.Advise(advisory.Reading{Temperature: 20})
	assert.Len(t, advice, 1)

	// Zero is a real value, not "absent": it triggers the low humidity check.
	advice = advisory.Advise(advisory.Reading{Temperature: 20, Humidity: ptr(0)})
	require.Len(t, advice, 2)
	assert.Equal(t, "Low humidity, keep your skin hydrated.", advice[1])

	// Zero wind is present but below threshold.
	advice = advisory.Advise(advisory.Reading{Temperature: 20, WindSpeed: ptr(0)})
	assert.Len(t, advice, 1)
}

func TestAdvise_ModerateHumidityNoMessage(t *testing.T) {
	advice := advisory.Advise(advisory.Reading{Temperature: 20, Humidity: ptr(55)})
	assert.Len(t, advice, 1)
}

func TestClassify_AllApplicableFlags(t *testing.T) {
	alerts := advisory.Classify(weather.ConditionThunderstorm, 40, 15)

	assert.Equal(t, []advisory.Alert{
		advisory.AlertUmbrella,
		advisory.AlertHeatWave,
		advisory.AlertStrongWind,
	}, alerts)
}

func TestClassify_ColdWaveThreshold(t *testing.T) {
	assert.Contains(t, advisory.Classify(weather.ConditionClear, 5, 0), advisory.AlertColdWave)
	assert.NotContains(t, advisory.Classify(weather.ConditionClear, 6, 0), advisory.AlertColdWave)
}

func TestClassify_PrecipitationConditions(t *testing.T) {
	for _, c := range []weather.Condition{weather.ConditionRain, weather.ConditionDrizzle, weather.ConditionThunderstorm} {
		assert.Contains(t, advisory.Classify(c, 20, 0), advisory.AlertUmbrella, string(c))
	}
	assert.Empty(t, advisory.Classify(weather.ConditionSnow, 20, 0))
}

func TestMessages_NoSevereAlerts(t *testing.T) {
	messages := advisory.Messages(nil)
	assert.Equal(t, []string{advisory.NoSevereAlerts}, messages)

	messages = advisory.Messages([]advisory.Alert{advisory.AlertUmbrella})
	assert.Equal(t, []string{"Rain expected, carry an umbrella."}, messages)
}
