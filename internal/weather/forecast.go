package weather

// dateLayout is the calendar-date component of a sample timestamp.
const dateLayout = "2006-01-02"

// noonHour is the time-of-day slot that represents a forecast day.
const noonHour = 12

// DailyPoints reduces a forecast series to one point per calendar date,
// keeping only the sample at local noon. Dates without a midday sample are
// omitted rather than substituted: the provider's first and last days often
// lack one. Output order follows the order dates first appear in the input,
// which for a chronologically ordered series is chronological. The reduction
// is idempotent.
func DailyPoints(samples []ForecastSample) []DailyPoint {
	seen := make(map[string]bool, len(samples)/8+1)
	points := make([]DailyPoint, 0, len(samples)/8+1)

	for _, s := range samples {
		if s.Time.Hour() != noonHour || s.Time.Minute() != 0 || s.Time.Second() != 0 {
			continue
		}
		date := s.Time.Format(dateLayout)
		if seen[date] {
			continue
		}
		seen[date] = true
		points = append(points, DailyPoint{Date: date, Temperature: s.Temperature})
	}

	return points
}

// FullSeries returns every sample unchanged, for callers that want the full
// 3-hour granularity instead of the daily reduction.
func FullSeries(samples []ForecastSample) []ForecastSample {
	out := make([]ForecastSample, len(samples))
	copy(out, samples)
	return out
}
