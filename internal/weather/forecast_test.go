package weather_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/weather"
)

func sampleAt(day, hour int, temp float64) weather.ForecastSample {
	return weather.ForecastSample{
		Time:        time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC),
		Temperature: temp,
	}
}

func TestDailyPoints_PicksMiddaySamplePerDate(t *testing.T) {
	samples := []weather.ForecastSample{
		sampleAt(1, 15, 21.0),
		sampleAt(1, 18, 19.0),
		sampleAt(2, 9, 16.0),
		sampleAt(2, 12, 22.5),
		sampleAt(2, 15, 23.0),
		sampleAt(3, 12, 18.0),
	}

	points := weather.DailyPoints(samples)

	// March 1 has no midday sample and is omitted, not substituted.
	require.Len(t, points, 2)
	assert.Equal(t, weather.DailyPoint{Date: "2026-03-02", Temperature: 22.5}, points[0])
	assert.Equal(t, weather.DailyPoint{Date: "2026-03-03", Temperature: 18.0}, points[1])
}

func TestDailyPoints_IgnoresNonZeroMinutes(t *testing.T) {
	samples := []weather.ForecastSample{
		{Time: time.Date(2026, time.March, 2, 12, 30, 0, 0, time.UTC), Temperature: 20.0},
		{Time: time.Date(2026, time.March, 2, 12, 0, 30, 0, time.UTC), Temperature: 21.0},
	}

	assert.Empty(t, weather.DailyPoints(samples))
}

func TestDailyPoints_FirstMiddayWinsOnDuplicates(t *testing.T) {
	samples := []weather.ForecastSample{
		sampleAt(2, 12, 22.5),
		sampleAt(2, 12, 99.0),
	}

	points := weather.DailyPoints(samples)
	require.Len(t, points, 1)
	assert.Equal(t, 22.5, points[0].Temperature)
}

func TestDailyPoints_Idempotent(t *testing.T) {
	samples := []weather.ForecastSample{
		sampleAt(1, 12, 10.0),
		sampleAt(2, 12, 11.0),
		sampleAt(3, 12, 12.0),
	}

	first := weather.DailyPoints(samples)
	second := weather.DailyPoints(samples)
	assert.Equal(t, first, second)
}

func TestDailyPoints_BoundedByDistinctDates(t *testing.T) {
	// Full 5-day series at 3-hour resolution: 40 samples, 5 midday slots.
	var samples []weather.ForecastSample
	for day := 1; day <= 5; day++ {
		for hour := 0; hour < 24; hour += 3 {
			samples = append(samples, sampleAt(day, hour, float64(day*10+hour)))
		}
	}

	points := weather.DailyPoints(samples)
	require.Len(t, points, 5)
	for i, p := range points {
		assert.Equal(t, float64((i+1)*10+12), p.Temperature)
	}
}

func TestDailyPoints_Empty(t *testing.T) {
	assert.Empty(t, weather.DailyPoints(nil))
}

func TestFullSeries_PassesEverySampleThrough(t *testing.T) {
	samples := []weather.ForecastSample{
		sampleAt(1, 9, 14.0),
		sampleAt(1, 12, 17.0),
		sampleAt(1, 15, 16.5),
	}

	series := weather.FullSeries(samples)
	assert.Equal(t, samples, series)

	// The returned slice is a copy, not an alias.
	series[0].Temperature = -100
	assert.Equal(t, 14.0, samples[0].Temperature)
}
