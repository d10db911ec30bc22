// Package store holds the client-side state shared by the panel views: the
// fetched food catalog and the cart quantities.
package store

import (
	"context"
	"sync"

	"foodhub/models"
)

type FoodLister interface {
	FetchFoodList(ctx context.Context) ([]models.Food, error)
}

// CatalogStore holds the last successfully fetched food list. Create one per
// panel session and Close it on shutdown.
type CatalogStore struct {
	source FoodLister

	mu          sync.RWMutex
	items       []models.Food
	loaded      bool
	closed      bool
	cancels     map[int]context.CancelFunc
	subscribers map[int]func([]models.Food)
	nextID      int
	latest      int
}

func NewCatalogStore(source FoodLister) *CatalogStore {
	return &CatalogStore{
		source:      source,
		items:       []models.Food{},
		cancels:     make(map[int]context.CancelFunc),
		subscribers: make(map[int]func([]models.Food)),
	}
}

// Load fetches the catalog once. On failure the held list is left as it was
// and the error is returned; nothing is retried. A result arriving after
// Close is dropped, as is one from a load overtaken by a later Load call.
func (s *CatalogStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return context.Canceled
	}
	ctx, cancel := context.WithCancel(ctx)
	id := s.nextID
	s.nextID++
	s.cancels[id] = cancel
	s.latest = id
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.cancels, id)
		s.mu.Unlock()
	}()

	items, err := s.source.FetchFoodList(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return context.Canceled
	}
	if id != s.latest {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = append([]models.Food{}, items...)
	s.loaded = true
	snapshot := s.snapshotLocked()
	subs := make([]func([]models.Food), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// Items returns a copy of the current list.
func (s *CatalogStore) Items() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Loaded reports whether any Load has succeeded.
func (s *CatalogStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *CatalogStore) Lookup(id string) (models.Food, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.items {
		if f.ID == id {
			return f, true
		}
	}
	return models.Food{}, false
}

// Subscribe registers fn to receive every new list. The returned func
// removes it.
func (s *CatalogStore) Subscribe(fn func([]models.Food)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// Close cancels in-flight loads and drops all subscribers. Safe to call more
// than once.
func (s *CatalogStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.subscribers = map[int]func([]models.Food){}
}

func (s *CatalogStore) snapshotLocked() []models.Food {
	return append([]models.Food{}, s.items...)
}
