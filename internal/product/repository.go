package product

import (
	"errors"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository is read-only: the catalog is seeded once at startup.
type Repository interface {
	List() []Product
	GetByID(id string) (Product, error)
	ListByCategory(c Category) []Product
}

// InMemoryRepository keeps the catalog in insertion order. Slices handed
// out are copies so callers cannot mutate the seed.
type InMemoryRepository struct {
	storage []Product
	byID    map[string]int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
		byID:    make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = len(r.storage)
		r.storage = append(r.storage, p)
	}
	return r
}

func (r *InMemoryRepository) List() []Product {
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return r.storage[i], nil
}

func (r *InMemoryRepository) ListByCategory(c Category) []Product {
	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}
