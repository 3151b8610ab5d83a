package models

// RecentSearch is one remembered lookup in a session.
type RecentSearch struct {
	Query      string    `json:"query"`
	Location   *Location `json:"location,omitempty"`
	SearchedAt Timestamp `json:"searchedAt"`
}

// RecentSearches is the response body for the session history endpoint.
type RecentSearches struct {
	SessionID string         `json:"sessionId"`
	Searches  []RecentSearch `json:"searches"`
}
