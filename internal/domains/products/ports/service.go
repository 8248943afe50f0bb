package ports

import (
	"context"

	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
)

// Service exposes product catalog use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
