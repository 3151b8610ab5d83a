package resilience_test

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/provider/resilience"
)

func TestRegistry_HealthTracking(t *testing.T) {
	registry := resilience.NewRegistry()
	client := resilience.NewClient(resilience.DefaultClientConfig("geocode"))

	registry.Register("geocode", client)

	health := registry.GetHealth("geocode")
	require.NotNil(t, health)
	assert.Equal(t, "geocode", health.Name)
	assert.Equal(t, gobreaker.StateClosed, health.CircuitState)
	assert.True(t, health.IsHealthy())
	assert.Nil(t, health.LastSuccessAt)

	registry.RecordSuccess("geocode")
	registry.RecordFailure("geocode", errors.New("boom"))

	health = registry.GetHealth("geocode")
	require.NotNil(t, health)
	assert.NotNil(t, health.LastSuccessAt)
	assert.NotNil(t, health.LastFailureAt)
	assert.Equal(t, "boom", health.LastError)
}

func TestRegistry_UnknownUpstream(t *testing.T) {
	registry := resilience.NewRegistry()
	assert.Nil(t, registry.GetHealth("nope"))
	assert.Empty(t, registry.GetAllHealth())
}
