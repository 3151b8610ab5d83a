package models

// Location represents a resolved geographic location in API responses.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Label   string  `json:"label"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
}

// DetectedLocation is the response for IP-based location detection.
type DetectedLocation struct {
	Location Location `json:"location"`
	Source   string   `json:"source"`
}
