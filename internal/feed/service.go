package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"househunt/internal/listing"
)

// Query selects a feed variant: a category, a free-text search term, or the
// unfiltered feed when neither is set (category "All" counts as unset).
type Query struct {
	Category   string
	SearchTerm string
}

func (q Query) String() string {
	switch {
	case q.SearchTerm != "":
		return "search:" + q.SearchTerm
	case q.Category != "" && q.Category != listing.CategoryAll:
		return "category:" + q.Category
	default:
		return "all"
	}
}

// Lister is the remote listing query, implemented by api.Client.
type Lister interface {
	ListProperties(ctx context.Context, category string) ([]listing.Property, error)
	SearchProperties(ctx context.Context, term string) ([]listing.Property, error)
}

// Service fetches listing feeds and is the single writer of the shared
// store.
type Service struct {
	remote Lister
	store  *Store
	gen    atomic.Uint64
}

// NewService creates a feed service writing into store.
func NewService(remote Lister, store *Store) *Service {
	return &Service{remote: remote, store: store}
}

// Store returns the shared listing store for readers.
func (s *Service) Store() *Store {
	return s.store
}

// Fetch issues the query and replaces the store with the result. Fetches may
// overlap; the newest issued query wins. A result arriving after a newer
// query has already been applied is discarded, and a zero-match result still
// replaces the store with an empty set. On failure the store's listings are
// left unchanged and the error is returned for the caller to surface.
func (s *Service) Fetch(ctx context.Context, q Query) ([]listing.Property, error) {
	gen := s.gen.Add(1)
	s.store.beginLoading(gen)

	props, err := s.query(ctx, q)
	if err != nil {
		s.store.fail(gen)
		return nil, fmt.Errorf("fetching feed %s: %w", q, err)
	}
	if props == nil {
		props = []listing.Property{}
	}
	if !s.store.complete(gen, props) {
		slog.Debug("feed: stale result discarded", "query", q.String(), "generation", gen)
	}
	return props, nil
}

func (s *Service) query(ctx context.Context, q Query) ([]listing.Property, error) {
	if q.SearchTerm != "" {
		return s.remote.SearchProperties(ctx, q.SearchTerm)
	}
	return s.remote.ListProperties(ctx, q.Category)
}
