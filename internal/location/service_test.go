package location_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast/skycast/internal/location"
)

type mockResolver struct {
	result *location.Resolved
	err    error
	calls  int
}

func (m *mockResolver) Resolve(_ context.Context, _ location.Query) (*location.Resolved, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockResolver) Name() string { return "mock-geo" }

type mockLocator struct {
	result *location.Resolved
	err    error
}

func (m *mockLocator) Locate(_ context.Context) (*location.Resolved, error) {
	return m.result, m.err
}

func (m *mockLocator) Name() string { return "mock-ip" }

func newService(r *mockResolver, l *mockLocator) *location.Service {
	return location.NewService(location.ServiceConfig{
		Resolver: r,
		Locator:  l,
		Logger:   zerolog.Nop(),
	})
}

func TestService_Resolve(t *testing.T) {
	resolver := &mockResolver{
		result: &location.Resolved{Lat: 23.02, Lon: 72.57, Label: "Ahmedabad, IN", Country: "IN"},
	}
	svc := newService(resolver, &mockLocator{})

	res, err := svc.Resolve(context.Background(), location.Query{City: "Ahmedabad", Country: "IN"})
	require.NoError(t, err)
	assert.Equal(t, "Ahmedabad, IN", res.Label)
	assert.Equal(t, 23.02, res.Lat)
}

func TestService_Resolve_EmptyCity(t *testing.T) {
	resolver := &mockResolver{}
	svc := newService(resolver, &mockLocator{})

	_, err := svc.Resolve(context.Background(), location.Query{})
	assert.ErrorIs(t, err, location.ErrNotFound)
	assert.Zero(t, resolver.calls, "should not reach the provider")
}

func TestService_Resolve_ProviderFailuresCollapseToNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "no match", err: location.ErrNotFound},
		{name: "transport error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&mockResolver{err: tt.err}, &mockLocator{})

			_, err := svc.Resolve(context.Background(), location.Query{City: "Atlantis"})
			assert.ErrorIs(t, err, location.ErrNotFound)
		})
	}
}

func TestService_Resolve_RejectsInvalidCoordinates(t *testing.T) {
	resolver := &mockResolver{
		result: &location.Resolved{Lat: 120, Lon: 0, Label: "Broken"},
	}
	svc := newService(resolver, &mockLocator{})

	_, err := svc.Resolve(context.Background(), location.Query{City: "Broken"})
	assert.ErrorIs(t, err, location.ErrNotFound)
}

func TestService_Detect(t *testing.T) {
	locator := &mockLocator{
		result: &location.Resolved{Lat: 52.37, Lon: 4.89, Label: "Amsterdam, NL", Country: "NL"},
	}
	svc := newService(&mockResolver{}, locator)

	res, err := svc.Detect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam, NL", res.Label)
}

func TestService_Detect_FailureIsNotFatal(t *testing.T) {
	svc := newService(&mockResolver{}, &mockLocator{err: errors.New("timeout")})

	_, err := svc.Detect(context.Background())
	assert.ErrorIs(t, err, location.ErrDetectFailed)
}
