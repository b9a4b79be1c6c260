package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/meltforce/liftlog/internal/models"
)

// ErrSuperseded reports that a newer search started while this one was in
// flight; its result was discarded.
var ErrSuperseded = errors.New("search superseded by a newer one")

// Searcher serializes the outcome of overlapping searches: each call gets a
// generation number, and only the newest generation may publish results.
// In-flight requests are not cancelled; a stale result is simply dropped.
// A failed search leaves the previously published results in place.
type Searcher struct {
	client *Client

	mu      sync.Mutex
	gen     uint64
	results []models.Exercise
}

// NewSearcher wraps a catalog client.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

// Search runs the smart-search chain for term. If a newer search began
// before this one finished, the result is discarded and ErrSuperseded is
// returned.
func (s *Searcher) Search(ctx context.Context, term string) ([]models.Exercise, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	results, err := s.client.Search(ctx, term)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	s.results = results
	return results, nil
}

// Results returns the most recently published results.
func (s *Searcher) Results() []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
