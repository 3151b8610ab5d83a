package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skycast/skycast/internal/location"
)

// Store is an in-memory session store. Sessions are keyed by an opaque
// UUID and expire after idleTTL without activity.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	idleTTL  time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// StoreConfig holds the configuration for a Store.
type StoreConfig struct {
	// IdleTTL is the inactivity window before a session expires.
	// Defaults to DefaultIdleTTL.
	IdleTTL time.Duration
	Logger  zerolog.Logger
}

// NewStore creates a new in-memory session store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	return &Store{
		sessions: make(map[string]*State),
		idleTTL:  cfg.IdleTTL,
		logger:   cfg.Logger.With().Str("component", "session_store").Logger(),
		now:      time.Now,
	}
}

// Create mints a new session and returns its state.
func (s *Store) Create(_ context.Context) *State {
	now := s.now()
	state := &State{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		LastSeenAt: now,
	}

	s.mu.Lock()
	s.sessions[state.ID] = state
	s.mu.Unlock()

	s.logger.Debug().Str("session_id", state.ID).Msg("session created")
	return copyState(state)
}

// Get retrieves a session by ID, refreshing its activity timestamp.
// Expired sessions are treated as not found.
func (s *Store) Get(_ context.Context, id string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if now.Sub(state.LastSeenAt) > s.idleTTL {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	state.LastSeenAt = now
	return copyState(state), nil
}

// GetOrCreate returns the session for id, or a fresh one when id is
// empty, unknown, or expired.
func (s *Store) GetOrCreate(ctx context.Context, id string) *State {
	if id != "" {
		if state, err := s.Get(ctx, id); err == nil {
			return state
		}
	}
	return s.Create(ctx)
}

// RememberSearch records a search in the session's history.
func (s *Store) RememberSearch(_ context.Context, id string, search Search) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	state.RememberSearch(search)
	state.LastSeenAt = s.now()
	return nil
}

// SetLastDetected records the most recent IP-detected location.
func (s *Store) SetLastDetected(_ context.Context, id string, loc *location.Resolved) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	if loc != nil {
		cpy := *loc
		state.LastDetected = &cpy
	}
	state.LastSeenAt = s.now()
	return nil
}

// Sweep removes expired sessions and returns how many were evicted.
// Intended to be called periodically from a background goroutine.
func (s *Store) Sweep(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, state := range s.sessions {
		if now.Sub(state.LastSeenAt) > s.idleTTL {
			delete(s.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Debug().Int("evicted", evicted).Msg("expired sessions swept")
	}
	return evicted
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// copyState returns a deep enough copy that callers cannot mutate
// store-owned state.
func copyState(state *State) *State {
	cpy := *state
	cpy.RecentSearches = append([]Search(nil), state.RecentSearches...)
	if state.LastDetected != nil {
		loc := *state.LastDetected
		cpy.LastDetected = &loc
	}
	return &cpy
}
