package core

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Service is the session state around an immutable Store: the review
// ledger, per-actor saved lists and like counts. It is safe for
// concurrent use; the Store is read without locking and the Ledger value
// is swapped under mu.
type Service struct {
	store *Store
	now   func() time.Time

	mu     sync.RWMutex
	ledger Ledger
	saved  map[string]map[string]bool // actor key -> resource id set
	likes  map[string]int
}

// NewService wraps store. A nil now uses time.Now.
func NewService(store *Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store: store,
		now:   now,
		saved: make(map[string]map[string]bool),
		likes: make(map[string]int),
	}
}

// Store returns the underlying resource store.
func (s *Service) Store() *Store {
	return s.store
}

// Query filters the store.
func (s *Service) Query(q QueryState) []Resource {
	return Filter(s.store, q)
}

// Get returns one resource or ErrResourceNotFound.
func (s *Service) Get(id string) (Resource, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return Resource{}, fmt.Errorf("get %q: %w", id, ErrResourceNotFound)
	}
	return r, nil
}

// Ledger returns a snapshot of the review ledger.
func (s *Service) Ledger() Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger
}

// Reviews returns the reviews of a resource, newest first.
func (s *Service) Reviews(id string) []Review {
	return s.Ledger().ForResource(id)
}

// AddReview records a review by actor. The resource must exist.
func (s *Service) AddReview(actor *Actor, in ReviewInput) (Review, error) {
	if !s.store.Has(in.ResourceID) {
		return Review{}, fmt.Errorf("add review: %w", ErrResourceNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, r, err := s.ledger.Add(actor, in, s.now())
	if err != nil {
		return Review{}, fmt.Errorf("add review: %w", err)
	}
	s.ledger = next
	return r, nil
}

// Score is the current mean rating of a resource.
func (s *Service) Score(id string) float64 {
	return Score(id, s.Ledger())
}

// Scores returns the score of every given resource from one ledger snapshot.
func (s *Service) Scores(resources []Resource) map[string]float64 {
	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return Scores(ids, s.Ledger())
}

// ToggleSave adds id to the actor's saved list, or removes it when already
// saved, and returns the new state and like count.
func (s *Service) ToggleSave(actor *Actor, id string) (bool, int, error) {
	if actor == nil || actor.key() == "" {
		return false, 0, ErrUnauthenticated
	}
	if !s.store.Has(id) {
		return false, 0, fmt.Errorf("toggle save %q: %w", id, ErrResourceNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.saved[actor.key()]
	if set == nil {
		set = make(map[string]bool)
		s.saved[actor.key()] = set
	}

	if set[id] {
		delete(set, id)
		if s.likes[id] > 0 {
			s.likes[id]--
		}
		return false, s.likes[id], nil
	}
	set[id] = true
	s.likes[id]++
	return true, s.likes[id], nil
}

// IsSaved reports whether actor has saved id.
func (s *Service) IsSaved(actor *Actor, id string) bool {
	if actor == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved[actor.key()][id]
}

// Saved returns the actor's saved resources in store order. An anonymous
// actor has none.
func (s *Service) Saved(actor *Actor) []Resource {
	if actor == nil {
		return []Resource{}
	}

	s.mu.RLock()
	ids := make([]string, 0, len(s.saved[actor.key()]))
	for id := range s.saved[actor.key()] {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		pi, _ := s.store.position(ids[i])
		pj, _ := s.store.position(ids[j])
		return pi < pj
	})

	out := make([]Resource, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.store.Get(id); ok {
			out = append(out, r)
		}
	}
	return out
}

// Likes returns how many actors currently have id saved.
func (s *Service) Likes(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.likes[id]
}
