package session

import (
	"errors"
	"time"

	"github.com/skycast/skycast/internal/location"
)

// MaxRecentSearches caps the per-session search history. When the list is
// full the oldest entry is evicted first.
const MaxRecentSearches = 5

// DefaultIdleTTL is how long a session survives without activity.
const DefaultIdleTTL = 30 * time.Minute

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Search is one remembered lookup.
type Search struct {
	Query      string             `json:"query"`
	Resolved   *location.Resolved `json:"resolved,omitempty"`
	SearchedAt time.Time          `json:"searched_at"`
}

// State is the per-session data the dashboard keeps between requests.
type State struct {
	ID             string             `json:"id"`
	RecentSearches []Search           `json:"recent_searches"`
	LastDetected   *location.Resolved `json:"last_detected,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	LastSeenAt     time.Time          `json:"last_seen_at"`
}

// RememberSearch appends a search to the history, evicting the oldest
// entry once MaxRecentSearches is reached.
func (s *State) RememberSearch(search Search) {
	s.RecentSearches = append(s.RecentSearches, search)
	if len(s.RecentSearches) > MaxRecentSearches {
		s.RecentSearches = s.RecentSearches[len(s.RecentSearches)-MaxRecentSearches:]
	}
}
