// Package session keeps the recent conversation of each chat session in a
// bounded, expiring in-memory cache.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Turn is one message and the reply it received.
type Turn struct {
	At       time.Time `json:"at"`
	Message  string    `json:"message"`
	Response string    `json:"response"`
	Intent   string    `json:"intent"`
	Emotion  string    `json:"emotion"`
}

// Store holds up to maxSessions sessions, evicting the least recently used
// one when full. A session expires ttl after its last recorded turn.
type Store struct {
	mu       sync.Mutex // serializes read-modify-write in Record
	cache    *expirable.LRU[string, []Turn]
	maxTurns int
}

// New creates a Store. maxTurns bounds the history kept per session.
func New(maxSessions int, ttl time.Duration, maxTurns int) *Store {
	return &Store{
		cache:    expirable.NewLRU[string, []Turn](maxSessions, nil, ttl),
		maxTurns: max(maxTurns, 1),
	}
}

// Record appends turn to the session's history and renews its TTL.
// Only the newest maxTurns turns are kept.
func (s *Store) Record(id string, turn Turn) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, _ := s.cache.Get(id)
	start := max(0, len(prev)+1-s.maxTurns)
	next := make([]Turn, 0, len(prev)-start+1)
	next = append(next, prev[start:]...)
	next = append(next, turn)
	s.cache.Add(id, next)
}

// History returns a copy of the session's turns, oldest first.
func (s *Store) History(id string) ([]Turn, bool) {
	turns, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return slices.Clone(turns), true
}

// Delete forgets a session.
func (s *Store) Delete(id string) {
	s.cache.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
