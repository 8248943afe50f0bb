package ports

import (
	"context"
	"errors"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates. Update and Remove are compound
// operations: the adapter must execute them atomically per order id so that
// concurrent callers never observe or produce an interleaved state.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// Update loads the order, applies mutate, and stores the result as one
	// atomic unit. It returns ErrNotFound when the order does not exist.
	Update(ctx context.Context, id int64, mutate func(*domain.Order) error) (*domain.Order, error)
	// Remove deletes the order and returns its pre-deletion state as one
	// atomic unit.
	Remove(ctx context.Context, id int64) (*domain.Order, error)
}
