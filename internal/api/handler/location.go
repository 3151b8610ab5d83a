package handler

import (
	"net/http"
	"time"

	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/session"
)

// LocationHandler handles location resolution endpoints.
type LocationHandler struct {
	locations *location.Service
	sessions  *session.Store
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locations *location.Service, sessions *session.Store) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		sessions:  sessions,
	}
}

// Resolve handles GET /v1/locations/resolve - geocode a free-text query.
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := location.Query{
		City:    r.URL.Query().Get("city"),
		State:   r.URL.Query().Get("state"),
		Country: r.URL.Query().Get("country"),
	}
	if q.City == "" {
		response.BadRequest(w, r, "city is required", []models.FieldError{
			{Field: "city", Message: "must not be empty"},
		})
		return
	}

	resolved, err := h.locations.Resolve(r.Context(), q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	state := h.sessions.GetOrCreate(r.Context(), sessionIDFromRequest(r))
	_ = h.sessions.RememberSearch(r.Context(), state.ID, session.Search{
		Query:      q.String(),
		Resolved:   resolved,
		SearchedAt: time.Now(),
	})
	w.Header().Set(sessionIDHeader, state.ID)

	response.JSON(w, r, http.StatusOK, toLocationModel(resolved))
}

// Detect handles GET /v1/locations/detect - IP-based location detection.
func (h *LocationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.locations.Detect(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	state := h.sessions.GetOrCreate(r.Context(), sessionIDFromRequest(r))
	_ = h.sessions.SetLastDetected(r.Context(), state.ID, resolved)
	w.Header().Set(sessionIDHeader, state.ID)

	response.JSON(w, r, http.StatusOK, models.DetectedLocation{
		Location: toLocationModel(resolved),
		Source:   "ip",
	})
}

// toLocationModel converts a resolved location to its API representation.
func toLocationModel(res *location.Resolved) models.Location {
	return models.Location{
		Lat:     res.Lat,
		Lon:     res.Lon,
		Label:   res.Label,
		State:   res.State,
		Country: res.Country,
	}
}
