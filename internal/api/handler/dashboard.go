package handler

import (
	"net/http"
	"time"

	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/session"
	"github.com/skycast/skycast/internal/weather"
)

// DashboardHandler assembles the full dashboard view: resolved location,
// current conditions, and the daily forecast in one round trip.
type DashboardHandler struct {
	locations *location.Service
	weather   *weather.Service
	sessions  *session.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(locations *location.Service, svc *weather.Service, sessions *session.Store) *DashboardHandler {
	return &DashboardHandler{
		locations: locations,
		weather:   svc,
		sessions:  sessions,
	}
}

// Dashboard handles GET /v1/dashboard. The location comes from an explicit
// city query when given, otherwise from IP detection.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	units, err := weather.ParseUnits(params.Get("units"))
	if err != nil {
		response.BadRequest(w, r, "invalid units", []models.FieldError{
			{Field: "units", Message: "must be metric or imperial"},
		})
		return
	}

	state := h.sessions.GetOrCreate(r.Context(), sessionIDFromRequest(r))
	w.Header().Set(sessionIDHeader, state.ID)

	resolved, searched, err := h.resolveLocation(r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if searched != "" {
		_ = h.sessions.RememberSearch(r.Context(), state.ID, session.Search{
			Query:      searched,
			Resolved:   resolved,
			SearchedAt: time.Now(),
		})
	} else {
		_ = h.sessions.SetLastDetected(r.Context(), state.ID, resolved)
	}

	ref := weather.ByCoords(resolved.Lat, resolved.Lon)

	current, err := h.weather.CurrentConditions(r.Context(), ref, units)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	forecast, err := h.weather.Forecast(r.Context(), ref, units)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.Dashboard{
		SessionID: state.ID,
		Location:  toLocationModel(resolved),
		Current:   toCurrentWeatherModel(current),
		Forecast:  toDailyModel(weather.DailyPoints(forecast.Samples)),
	})
}

// resolveLocation picks the dashboard location: explicit query first, then
// IP detection. The searched return value is non-empty only for explicit
// queries, so the session records the right kind of history entry.
func (h *DashboardHandler) resolveLocation(r *http.Request) (*location.Resolved, string, error) {
	params := r.URL.Query()

	if city := params.Get("city"); city != "" {
		q := location.Query{
			City:    city,
			State:   params.Get("state"),
			Country: params.Get("country"),
		}
		resolved, err := h.locations.Resolve(r.Context(), q)
		if err != nil {
			return nil, "", err
		}
		return resolved, q.String(), nil
	}

	resolved, err := h.locations.Detect(r.Context())
	if err != nil {
		return nil, "", err
	}
	return resolved, "", nil
}
