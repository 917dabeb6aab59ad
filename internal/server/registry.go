package server

import (
	"sync"
	"time"
)

// MatchInfo describes one live match.
type MatchInfo struct {
	ID        string
	StartedAt time.Time
}

// Registry tracks matches currently being played, for the accept loop's
// log lines and for admin inspection. Matches register when both players
// are paired and deregister when the coordinator returns.
type Registry struct {
	mu      sync.RWMutex
	matches map[string]MatchInfo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{matches: make(map[string]MatchInfo)}
}

// Add registers a match under its ID.
func (r *Registry) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[id] = MatchInfo{ID: id, StartedAt: time.Now()}
}

// Remove deregisters a match.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
}

// Count returns the number of live matches.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

// All returns the live matches.
func (r *Registry) All() []MatchInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]MatchInfo, 0, len(r.matches))
	for _, m := range r.matches {
		matches = append(matches, m)
	}
	return matches
}
