// Package feed synchronizes remote listing queries into the shared listing
// store.
package feed

import (
	"sync"

	"househunt/internal/listing"
)

// State is the store's fetch state as observed by readers.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePopulated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Store holds the current listing set for the session. The feed service is
// its only writer; the set is replaced wholesale, so readers see either the
// previous complete set or the new one, never a mix. Each fetch carries a
// generation number and a completion for a generation older than one
// already applied is discarded.
type Store struct {
	mu         sync.RWMutex
	state      State
	listings   []listing.Property
	appliedGen uint64
	loadingGen uint64
}

// NewStore creates an empty, idle store.
func NewStore() *Store {
	return &Store{state: StateIdle}
}

// Snapshot returns the current listing set and state. The returned slice is
// a copy; readers cannot perturb the store.
func (s *Store) Snapshot() ([]listing.Property, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]listing.Property, len(s.listings))
	copy(out, s.listings)
	return out, s.state
}

// State returns the current fetch state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// beginLoading marks a newly issued fetch. Loading is re-entered for every
// new query, even while an older fetch is still in flight.
func (s *Store) beginLoading(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.loadingGen {
		s.loadingGen = gen
		s.state = StateLoading
	}
}

// complete applies a successful fetch. It reports false, leaving the store
// untouched, when a result from a newer query has already been applied.
// While an even newer query is still in flight the listings are replaced
// but the state stays Loading: the newest query remains authoritative.
func (s *Store) complete(gen uint64, listings []listing.Property) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.appliedGen {
		return false
	}
	s.appliedGen = gen
	s.listings = listings
	if gen == s.loadingGen {
		s.state = StatePopulated
	}
	return true
}

// fail records a failed fetch. The listing set is left unchanged; the state
// flips to Failed only when the failure belongs to the newest query.
func (s *Store) fail(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadingGen {
		return false
	}
	s.state = StateFailed
	return true
}
