package ports

import (
	"context"
	"errors"

	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists product aggregates. Replace is a compound operation the
// adapter must execute atomically per product id.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Replace overwrites every stored field except the id as one atomic unit.
	// It returns ErrNotFound when the product does not exist.
	Replace(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
