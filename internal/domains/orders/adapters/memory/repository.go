package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. All operations,
// including the compound Update and Remove, run under one lock so concurrent
// callers serialize per the ledger's atomicity contract.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int64]*domain.Order
	nextID     int64
	nextItemID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(clone)
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

func (r *Repository) Update(_ context.Context, id int64, mutate func(*domain.Order) error) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := cloneOrder(existing)
	if err := mutate(clone); err != nil {
		return nil, err
	}
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	clone.ID = id
	r.store(clone)
	return cloneOrder(clone), nil
}

func (r *Repository) Remove(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	delete(r.orders, id)
	return cloneOrder(existing), nil
}

// store assigns ids and writes the order. Callers hold the write lock.
func (r *Repository) store(order *domain.Order) {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	} else if order.ID > r.nextID {
		r.nextID = order.ID
	}
	for i := range order.LineItems {
		if order.LineItems[i].ID == 0 {
			r.nextItemID++
			order.LineItems[i].ID = r.nextItemID
		} else if order.LineItems[i].ID > r.nextItemID {
			r.nextItemID = order.LineItems[i].ID
		}
	}
	r.orders[order.ID] = order
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.LineItems = append([]domain.LineItem{}, order.LineItems...)
	return &clone
}
