package session

import (
	"log/slog"
	"sync"
	"time"

	"city-weather/internal/search"
	"city-weather/internal/weather"

	"github.com/google/uuid"
)

// Store keeps one search.Controller per visitor, keyed by a random id.
// Entries idle for longer than the TTL are dropped.
type Store struct {
	service weather.Service
	logger  *slog.Logger
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	controller *search.Controller
	lastSeen   time.Time
}

func NewStore(service weather.Service, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		service:  service,
		logger:   logger.With("component", "session-store"),
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Get returns the controller for id. Unknown, malformed or expired ids get a
// fresh controller under a new id, which the caller should hand back to the visitor.
func (s *Store) Get(id string) (string, *search.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.sessions[id]; ok {
			e.lastSeen = now
			return id, e.controller
		}
	}

	newID := uuid.NewString()
	e := &entry{
		controller: search.NewController(s.service, s.logger),
		lastSeen:   now,
	}
	s.sessions[newID] = e
	s.logger.Debug("created session", "session_id", newID)
	return newID, e.controller
}

// Len reports how many sessions are live
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) evictLocked(now time.Time) {
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			s.logger.Debug("evicted idle session", "session_id", id)
		}
	}
}
