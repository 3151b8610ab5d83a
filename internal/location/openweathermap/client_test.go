package openweathermap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/location"
	"github.com/skycast/skycast/internal/location/openweathermap"
	"github.com/skycast/skycast/internal/provider/resilience"
)

func TestClient_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "Ahmedabad,IN", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "****", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Ahmedabad","lat":23.0216238,"lon":72.5797068,"country":"IN","state":"Gujarat"},
			{"name":"Ahmedabad","lat":29.06,"lon":77.26,"country":"IN"}
		]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	res, err := client.Resolve(context.Background(), location.Query{City: "Ahmedabad", Country: "IN"})
	require.NoError(t, err)
	require.NotNil(t, res)

	// First match wins
	assert.Equal(t, 23.0216238, res.Lat)
	assert.Equal(t, 72.5797068, res.Lon)
	assert.Equal(t, "Ahmedabad, IN", res.Label)
	assert.Equal(t, "Gujarat", res.State)
	assert.Equal(t, "IN", res.Country)
}

func TestClient_Resolve_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	_, err := client.Resolve(context.Background(), location.Query{City: "Nowhereville"})
	assert.ErrorIs(t, err, location.ErrNotFound)
}

func TestClient_Resolve_MissingCountryLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Springfield","lat":39.8,"lon":-89.65}]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	res, err := client.Resolve(context.Background(), location.Query{City: "Springfield"})
	require.NoError(t, err)
	assert.Equal(t, "Springfield", res.Label)
}

func TestClient_Resolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := resilience.DefaultClientConfig("test")
	cfg.MaxRetries = 0

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(cfg),
	})

	_, err := client.Resolve(context.Background(), location.Query{City: "Ahmedabad"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, location.ErrNotFound)
}

func TestClient_Name(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****"})
	assert.Equal(t, "openweathermap-geo", client.Name())
}
