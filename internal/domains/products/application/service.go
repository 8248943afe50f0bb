package application

import (
	"context"
	"errors"

	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/products/ports"
)

// Service orchestrates the product catalog use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog with its persistence collaborator.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored product. An empty catalog is a valid result.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// GetByID loads a single product.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return product, nil
}

// Create persists a new product, validating the write-time invariants.
func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err, product.ID)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err, product.ID)
	}
	return saved, nil
}

// Update overwrites every field of the stored product except its id. A caller
// that omits a field zeroes it.
func (s *Service) Update(ctx context.Context, id int64, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err, id)
	}
	updated, err := s.repo.Replace(ctx, id, product)
	if err != nil {
		return nil, mapError(err, id)
	}
	return updated, nil
}

// Delete removes the product. Orders keep frozen snapshots, so deletion never
// invalidates historical totals.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err, id)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
