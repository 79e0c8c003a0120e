// Package memory implements an in-memory order repository. State lives
// for the process lifetime only and is rebuilt from nothing on restart.
package memory

import (
	"context"
	"sync"

	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
)

// Repository provides a mutex-guarded in-memory implementation of
// order.Repository. Orders are kept most-recently-created first.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
	ids    map[string]struct{}
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{ids: make(map[string]struct{})}
}

// Insert adds a new order at the front of the list. It returns
// order.ErrDuplicateID if the id is already present.
func (r *Repository) Insert(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[o.ID]; ok {
		return order.ErrDuplicateID
	}
	r.orders = append([]order.Order{o}, r.orders...)
	r.ids[o.ID] = struct{}{}
	return nil
}

// Get retrieves an order by id.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order.Order{}, order.ErrNotFound
}

// List returns a copy of all orders, most-recently-created first.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Replace overwrites the stored order with matching id in place.
func (r *Repository) Replace(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = o
			return nil
		}
	}
	return order.ErrNotFound
}

// Update applies fn to the stored order with matching id while holding
// the store lock and returns the updated copy. If fn fails the stored
// order is untouched.
func (r *Repository) Update(ctx context.Context, id string, fn func(*order.Order) error) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			if err := fn(&o); err != nil {
				return order.Order{}, err
			}
			r.orders[i] = o
			return o, nil
		}
	}
	return order.Order{}, order.ErrNotFound
}
