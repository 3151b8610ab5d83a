package location

import (
	"context"

	"github.com/rs/zerolog"
)

// Resolver converts a free-text query into a resolved location.
type Resolver interface {
	// Resolve returns the highest-confidence match for the query.
	Resolve(ctx context.Context, q Query) (*Resolved, error)

	// Name returns the provider name for logging.
	Name() string
}

// Locator derives an approximate location from the caller's network address.
type Locator interface {
	// Locate returns the location the provider infers for this host.
	Locate(ctx context.Context) (*Resolved, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the location service.
type ServiceConfig struct {
	// Resolver is the geocoding provider.
	Resolver Resolver

	// Locator is the IP geolocation provider.
	Locator Locator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves location queries through a geocoding provider, with IP
// geolocation as a best-effort alternative.
type Service struct {
	resolver Resolver
	locator  Locator
	logger   zerolog.Logger
}

// NewService creates a new location service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		resolver: cfg.Resolver,
		locator:  cfg.Locator,
		logger:   cfg.Logger,
	}
}

// Resolve geocodes a free-text query. Any provider failure, including
// transport errors, surfaces as ErrNotFound: the caller corrects the input
// rather than retrying, so the distinction is only logged.
func (s *Service) Resolve(ctx context.Context, q Query) (*Resolved, error) {
	if q.City == "" {
		return nil, ErrNotFound
	}

	res, err := s.resolver.Resolve(ctx, q)
	if err != nil {
		s.logger.Warn().
			Str("query", q.String()).
			Str("provider", s.resolver.Name()).
			Err(err).
			Msg("geocoding failed")
		return nil, ErrNotFound
	}

	if err := res.Validate(); err != nil {
		s.logger.Error().
			Str("query", q.String()).
			Float64("lat", res.Lat).
			Float64("lon", res.Lon).
			Err(err).
			Msg("geocoding returned an invalid location")
		return nil, ErrNotFound
	}

	return res, nil
}

// Detect locates the caller by IP. Failure is never fatal: the caller falls
// back to manual entry, so every error collapses to ErrDetectFailed.
func (s *Service) Detect(ctx context.Context) (*Resolved, error) {
	res, err := s.locator.Locate(ctx)
	if err != nil {
		s.logger.Warn().
			Str("provider", s.locator.Name()).
			Err(err).
			Msg("ip geolocation failed")
		return nil, ErrDetectFailed
	}

	if err := res.Validate(); err != nil {
		s.logger.Warn().
			Str("provider", s.locator.Name()).
			Err(err).
			Msg("ip geolocation returned an invalid location")
		return nil, ErrDetectFailed
	}

	return res, nil
}
