package ports

import (
	"context"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
)

// Service exposes order ledger use cases to adapters.
type Service interface {
	Create(ctx context.Context, items []domain.LineItem) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, id int64, items []domain.LineItem) (*domain.Order, error)
	Cancel(ctx context.Context, id int64) (*domain.Order, error)
	Invoice(ctx context.Context, id int64) (domain.Invoice, error)
}
