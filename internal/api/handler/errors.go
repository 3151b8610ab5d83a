package handler

import (
	"errors"
	"net/http"

	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/provider/resilience"
	"github.com/skycast/skycast/internal/weather"
)

// writeDomainError maps a domain error onto the appropriate problem response.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, location.ErrNotFound):
		response.LocationNotFound(w, r, "no location matched the query")
	case errors.Is(err, location.ErrDetectFailed):
		response.ServiceUnavailable(w, r, "location detection is currently unavailable")
	case errors.Is(err, weather.ErrLocationNotFound):
		response.LocationNotFound(w, r, "no location matched the query")
	case errors.Is(err, weather.ErrInvalidLocationRef):
		response.BadRequest(w, r, "invalid location parameters", nil)
	case errors.Is(err, weather.ErrUnavailable):
		response.WeatherUnavailable(w, r, "the weather provider returned incomplete data")
	default:
		writeUpstreamError(w, r, err)
	}
}

// writeUpstreamError classifies a transport-level failure. Timeouts map to
// 504 and connectivity failures to 503; anything else is a plain 500.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	failure := resilience.Classify(err)
	if failure == nil {
		response.InternalError(w, r, "an unexpected error occurred")
		return
	}

	switch failure.StatusCode {
	case http.StatusRequestTimeout:
		response.UpstreamTimeout(w, r, failure.Message)
	case http.StatusServiceUnavailable:
		response.ServiceUnavailable(w, r, failure.Message)
	default:
		response.InternalError(w, r, failure.Message)
	}
}
