package weather_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/weather"
)

func TestParseUnits(t *testing.T) {
	units, err := weather.ParseUnits("")
	require.NoError(t, err)
	assert.Equal(t, weather.UnitsMetric, units)

	units, err = weather.ParseUnits("imperial")
	require.NoError(t, err)
	assert.Equal(t, weather.UnitsImperial, units)

	_, err = weather.ParseUnits("kelvin")
	assert.Error(t, err)
}

func TestLocationRef_Apply(t *testing.T) {
	params := url.Values{}
	weather.ByCoords(23.0216238, 72.5797068).Apply(params)
	assert.Equal(t, "23.021624", params.Get("lat"))
	assert.Equal(t, "72.579707", params.Get("lon"))
	assert.Empty(t, params.Get("q"))

	params = url.Values{}
	weather.ByQuery("Ahmedabad,IN").Apply(params)
	assert.Equal(t, "Ahmedabad,IN", params.Get("q"))
	assert.Empty(t, params.Get("lat"))
}

func TestLocationRef_Validate(t *testing.T) {
	assert.NoError(t, weather.ByCoords(0, 0).Validate())
	assert.NoError(t, weather.ByQuery("Paris").Validate())

	assert.ErrorIs(t, weather.ByCoords(-91, 0).Validate(), weather.ErrInvalidLocationRef)
	assert.ErrorIs(t, weather.ByCoords(0, 200).Validate(), weather.ErrInvalidLocationRef)
	assert.ErrorIs(t, weather.ByQuery("").Validate(), weather.ErrInvalidLocationRef)
}

func TestCondition_Icon(t *testing.T) {
	assert.Equal(t, "☀️", weather.ConditionClear.Icon())
	assert.Equal(t, "⛈", weather.ConditionThunderstorm.Icon())
	assert.Equal(t, "🌍", weather.ConditionUnknown.Icon())
	assert.Equal(t, "🌍", weather.Condition("SOMETHING_ELSE").Icon())
}

func TestCondition_IsPrecipitation(t *testing.T) {
	assert.True(t, weather.ConditionRain.IsPrecipitation())
	assert.True(t, weather.ConditionDrizzle.IsPrecipitation())
	assert.True(t, weather.ConditionThunderstorm.IsPrecipitation())
	assert.False(t, weather.ConditionSnow.IsPrecipitation())
	assert.False(t, weather.ConditionClear.IsPrecipitation())
}
