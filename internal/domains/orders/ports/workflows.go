package ports

import (
	"context"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
)

// WorkflowOrchestrator exposes durable workflow operations for the order ledger.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, items []domain.LineItem) (*domain.Order, error)
}
