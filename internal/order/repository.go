package order

import (
	"errors"
	"slices"
	"sync"
	"time"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. Each step is a
// separate write; there is no transaction spanning them.
type Repository interface {
	CreateOrder(o Order) (Order, error)
	CreateItems(orderRef int64, items []ItemRow) error
	LogNotifications(ns []Notification) error

	// List returns orders newest first, each with its items.
	List() ([]Order, error)
	// GetByOrderID returns one order with its items and notification log.
	GetByOrderID(orderID string) (Order, error)
}

// InMemoryRepository is used for tests and when no database is configured.
type InMemoryRepository struct {
	mu            sync.RWMutex
	orders        []Order
	items         []ItemRow
	notifications []Notification
	nextID        int64
	now           func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{now: time.Now}
}

func (r *InMemoryRepository) CreateOrder(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = r.now().UTC()
	o.Items, o.Notifications = nil, nil
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryRepository) CreateItems(orderRef int64, items []ItemRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		r.nextID++
		it.ID = r.nextID
		it.OrderRef = orderRef
		r.items = append(r.items, it)
	}
	return nil
}

func (r *InMemoryRepository) LogNotifications(ns []Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range ns {
		r.nextID++
		n.ID = r.nextID
		n.CreatedAt = r.now().UTC()
		r.notifications = append(r.notifications, n)
	}
	return nil
}

func (r *InMemoryRepository) itemsOf(ref int64) []ItemRow {
	out := make([]ItemRow, 0)
	for _, it := range r.items {
		if it.OrderRef == ref {
			out = append(out, it)
		}
	}
	return out
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		o.Items = r.itemsOf(o.ID)
		out = append(out, o)
	}
	// insertion order is creation order
	slices.Reverse(out)
	return out, nil
}

func (r *InMemoryRepository) GetByOrderID(orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderID != orderID {
			continue
		}
		o.Items = r.itemsOf(o.ID)
		o.Notifications = make([]Notification, 0)
		for _, n := range r.notifications {
			if n.OrderRef == o.ID {
				o.Notifications = append(o.Notifications, n)
			}
		}
		return o, nil
	}
	return Order{}, ErrNotFound
}
