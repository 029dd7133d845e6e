// Package memory keeps orders in process memory. It is the default store;
// nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/merchstudio/customizer/internal/core/domain"
)

// Repository guards its map with a mutex since gin serves requests on
// parallel goroutines. Insertion order is tracked separately so ListOrders
// is stable.
type Repository struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	ids    []string
}

func NewRepository() (*Repository, error) {
	return &Repository{
		orders: make(map[string]domain.Order),
	}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return nil, domain.ErrConflictingData
	}

	r.orders[order.ID] = *order
	r.ids = append(r.ids, order.ID)

	stored := r.orders[order.ID]
	return &stored, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*domain.Order, 0, len(r.ids))
	for _, id := range r.ids {
		order := r.orders[id]
		list = append(list, &order)
	}
	return list, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return nil, domain.ErrOrderNotFound
	}

	r.orders[order.ID] = *order

	stored := r.orders[order.ID]
	return &stored, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}

	delete(r.orders, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}
