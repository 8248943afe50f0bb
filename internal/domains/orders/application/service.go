package application

import (
	"context"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

// Service orchestrates the order ledger use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the order ledger with its persistence collaborator.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new order built from the supplied line item snapshots.
// The total is computed here and nowhere else.
func (s *Service) Create(ctx context.Context, items []domain.LineItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrInsufficientItems
	}
	order, err := domain.NewOrder(0, items)
	if err != nil {
		return nil, mapError(err, 0)
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, mapError(err, 0)
	}
	return saved, nil
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return order, nil
}

// List returns every stored order. An empty store yields ErrNoOrders, matching
// the wire contract callers already depend on.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}

// Update replaces the entire line item list and recomputes the total. The
// load-mutate-store runs atomically inside the repository.
func (s *Service) Update(ctx context.Context, id int64, items []domain.LineItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrInsufficientItems
	}
	updated, err := s.repo.Update(ctx, id, func(order *domain.Order) error {
		return order.ReplaceLineItems(items)
	})
	if err != nil {
		return nil, mapError(err, id)
	}
	return updated, nil
}

// Cancel removes the order and returns its state as it existed immediately
// before deletion.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return nil, mapError(err, id)
	}
	return removed, nil
}

// Invoice returns the billing view of an order.
func (s *Service) Invoice(ctx context.Context, id int64) (domain.Invoice, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	return domain.InvoiceFor(order), nil
}

var _ ports.Service = (*Service)(nil)
