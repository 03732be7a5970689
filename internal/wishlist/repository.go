package wishlist

import (
	"sync"
)

// Repository stores one wishlist per shopper session.
type Repository interface {
	Load(sessionID string) (State, error)
	Save(sessionID string, s State) error
}

// InMemoryRepository is used for tests and single-instance deployments.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string]State
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string]State)}
}

func (r *InMemoryRepository) Load(sessionID string) (State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.lists[sessionID]
	if !ok {
		return Empty(), nil
	}
	return s, nil
}

func (r *InMemoryRepository) Save(sessionID string, s State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(s.Items) == 0 {
		delete(r.lists, sessionID)
		return nil
	}
	r.lists[sessionID] = s
	return nil
}
