package weather

import (
	"context"

	"github.com/rs/zerolog"
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// CurrentConditions fetches current weather for a location reference.
	CurrentConditions(ctx context.Context, ref LocationRef, units Units) (*CurrentConditions, error)

	// Forecast fetches the multi-point forecast for a location reference.
	Forecast(ctx context.Context, ref LocationRef, units Units) (*Forecast, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service fetches weather data through a provider. Every call goes to the
// provider: conditions are request-scoped and never cached.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// CurrentConditions returns the current weather for a location reference.
func (s *Service) CurrentConditions(ctx context.Context, ref LocationRef, units Units) (*CurrentConditions, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Stringer("ref", ref).
		Str("units", string(units)).
		Str("provider", s.provider.Name()).
		Msg("fetching current conditions")

	current, err := s.provider.CurrentConditions(ctx, ref, units)
	if err != nil {
		s.logger.Error().
			Stringer("ref", ref).
			Err(err).
			Msg("failed to fetch current conditions")
		return nil, err
	}

	return current, nil
}

// Forecast returns the forecast series for a location reference.
func (s *Service) Forecast(ctx context.Context, ref LocationRef, units Units) (*Forecast, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Stringer("ref", ref).
		Str("units", string(units)).
		Str("provider", s.provider.Name()).
		Msg("fetching forecast")

	forecast, err := s.provider.Forecast(ctx, ref, units)
	if err != nil {
		s.logger.Error().
			Stringer("ref", ref).
			Err(err).
			Msg("failed to fetch forecast")
		return nil, err
	}

	return forecast, nil
}
