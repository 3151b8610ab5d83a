package ipapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/location/ipapi"
	"github.com/skycast/skycast/internal/provider/resilience"
)

func TestClient_Locate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "the provider infers the caller address")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"city": "Amsterdam",
			"region_code": "NH",
			"country_code": "NL",
			"latitude": 52.374,
			"longitude": 4.8897
		}`))
	}))
	defer server.Close()

	client := ipapi.NewClient(ipapi.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	res, err := client.Locate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 52.374, res.Lat)
	assert.Equal(t, 4.8897, res.Lon)
	assert.Equal(t, "Amsterdam, NL", res.Label)
	assert.Equal(t, "NH", res.State)
	assert.Equal(t, "NL", res.Country)
}

func TestClient_Locate_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 1.0, "longitude": 2.0}`))
	}))
	defer server.Close()

	client := ipapi.NewClient(ipapi.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	_, err := client.Locate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing city")
}

func TestClient_Locate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := ipapi.NewClient(ipapi.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	_, err := client.Locate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Name(t *testing.T) {
	client := ipapi.NewClient(ipapi.ClientConfig{})
	assert.Equal(t, "ipapi", client.Name())
}
