package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skycast/skycast/internal/location"
)

func TestQuery_String(t *testing.T) {
	tests := []struct {
		name     string
		query    location.Query
		expected string
	}{
		{
			name:     "city only",
			query:    location.Query{City: "Ahmedabad"},
			expected: "Ahmedabad",
		},
		{
			name:     "city and country",
			query:    location.Query{City: "Ahmedabad", Country: "IN"},
			expected: "Ahmedabad,IN",
		},
		{
			name:     "city state and country",
			query:    location.Query{City: "Portland", State: "OR", Country: "US"},
			expected: "Portland,OR,US",
		},
		{
			name:     "blank parts skipped",
			query:    location.Query{City: " Paris ", State: "  ", Country: "FR"},
			expected: "Paris,FR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.String())
		})
	}
}

func TestResolved_Validate(t *testing.T) {
	valid := location.Resolved{Lat: 23.02, Lon: 72.57, Label: "Ahmedabad, IN"}
	assert.NoError(t, valid.Validate())

	outOfRange := location.Resolved{Lat: 91, Lon: 0, Label: "Nowhere"}
	assert.ErrorIs(t, outOfRange.Validate(), location.ErrInvalidCoordinates)

	wrapped := location.Resolved{Lat: 0, Lon: 181, Label: "Nowhere"}
	assert.ErrorIs(t, wrapped.Validate(), location.ErrInvalidCoordinates)

	unlabeled := location.Resolved{Lat: 10, Lon: 10}
	assert.Error(t, unlabeled.Validate())
}
