package handler

import (
	"net/http"

	"github.com/skycast/skycast/internal/api/models"
	"github.com/skycast/skycast/internal/api/response"
	"github.com/skycast/skycast/internal/session"
)

// SessionHandler exposes per-session state.
type SessionHandler struct {
	sessions *session.Store
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// RecentSearches handles GET /v1/session/recent - the session's search
// history, oldest first.
func (h *SessionHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.GetOrCreate(r.Context(), sessionIDFromRequest(r))
	w.Header().Set(sessionIDHeader, state.ID)

	searches := make([]models.RecentSearch, 0, len(state.RecentSearches))
	for _, s := range state.RecentSearches {
		entry := models.RecentSearch{
			Query:      s.Query,
			SearchedAt: models.Timestamp(s.SearchedAt),
		}
		if s.Resolved != nil {
			loc := toLocationModel(s.Resolved)
			entry.Location = &loc
		}
		searches = append(searches, entry)
	}

	response.JSON(w, r, http.StatusOK, models.RecentSearches{
		SessionID: state.ID,
		Searches:  searches,
	})
}
