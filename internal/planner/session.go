package planner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/UnknownOlympus/compass/internal/models"
)

// ErrSuperseded is returned when a newer request was started before this one finished.
var ErrSuperseded = errors.New("route request superseded by a newer one")

// Planner is implemented by Resolver.
type Planner interface {
	Plan(ctx context.Context, start, end models.GeoPoint) models.Plan
}

// Session serializes the results of overlapping route requests from a single client.
// Every request takes a ticket from a monotonic counter; a result is delivered only if
// no newer ticket was issued while it was being resolved.
type Session struct {
	planner Planner
	latest  atomic.Uint64
}

// NewSession creates a Session on top of planner.
func NewSession(planner Planner) *Session {
	return &Session{planner: planner}
}

// Plan resolves a route like Planner.Plan but discards late results.
func (s *Session) Plan(ctx context.Context, start, end models.GeoPoint) (models.Plan, error) {
	ticket := s.latest.Add(1)

	plan := s.planner.Plan(ctx, start, end)
	if s.latest.Load() != ticket {
		return models.Plan{}, ErrSuperseded
	}

	return plan, nil
}

// Sessions keeps one Session per client key for as long as that client has a
// request in flight. A key with nothing in flight is forgotten, so the registry
// never holds more entries than there are concurrent requests.
type Sessions struct {
	planner Planner
	mu      sync.Mutex
	byKey   map[string]*sessionEntry
}

type sessionEntry struct {
	session  *Session
	inflight int
}

// NewSessions creates an empty session registry.
func NewSessions(planner Planner) *Sessions {
	return &Sessions{planner: planner, byKey: make(map[string]*sessionEntry)}
}

// Plan resolves a route within the session identified by key.
// It returns ErrSuperseded if a newer request for the same key started meanwhile.
func (s *Sessions) Plan(ctx context.Context, key string, start, end models.GeoPoint) (models.Plan, error) {
	entry := s.acquire(key)
	defer s.release(key, entry)

	return entry.session.Plan(ctx, start, end)
}

// Len reports how many sessions are currently tracked.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byKey)
}

func (s *Sessions) acquire(key string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.byKey[key]
	if !ok {
		entry = &sessionEntry{session: NewSession(s.planner)}
		s.byKey[key] = entry
	}
	entry.inflight++

	return entry
}

func (s *Sessions) release(key string, entry *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.inflight--
	if entry.inflight == 0 {
		delete(s.byKey, key)
	}
}
