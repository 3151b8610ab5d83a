// Package location resolves free-text place queries and caller IP addresses
// into coordinates with a display label.
package location

import (
	"errors"
	"strings"
)

// Location errors.
var (
	ErrNotFound           = errors.New("location not found")
	ErrDetectFailed       = errors.New("unable to detect location")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Query is a free-text location query. City is required; State and Country
// narrow the search.
type Query struct {
	City    string
	State   string
	Country string
}

// String renders the query in the comma-joined form geocoding providers
// expect, city first, skipping empty parts.
func (q Query) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{q.City, q.State, q.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ",")
}

// Resolved is a location resolved to coordinates. Label is always non-empty
// when resolution succeeds.
type Resolved struct {
	Lat     float64
	Lon     float64
	Label   string
	State   string
	Country string
}

// Validate checks the resolution invariants: coordinates in range and a
// non-empty label.
func (r *Resolved) Validate() error {
	if r.Lat < -90 || r.Lat > 90 || r.Lon < -180 || r.Lon > 180 {
		return ErrInvalidCoordinates
	}
	if r.Label == "" {
		return ErrNotFound
	}
	return nil
}
