package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/OleksandIadvigun/drugstore/internal/domains/orders/application"
	ordersdomain "github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	ordersports "github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

// PersistOrderActivityName persists an order aggregate through the ledger service.
const PersistOrderActivityName = "orders.activities.PersistOrder"

// Application error types surfaced through Temporal so validation failures are
// not retried and can be mapped back at the orchestrator.
const (
	ErrorTypeInsufficientItems = "InsufficientOrderItems"
	ErrorTypeInvalidInput      = "InvalidOrderInput"
)

// PlaceOrderInput carries the line item snapshots for a durable placement.
type PlaceOrderInput struct {
	LineItems []ordersdomain.LineItem
}

// Activities groups activities that operate on the order ledger.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the ledger service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PersistOrder stores a new order aggregate and returns it. Validation
// failures become non-retryable application errors.
func (a *Activities) PersistOrder(ctx context.Context, input PlaceOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order persist activity not initialized")
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "lineItems", len(input.LineItems))
	order, err := a.service.Create(ctx, input.LineItems)
	if err != nil {
		logger.Error("PersistOrder activity failed", "error", err)
		if errors.Is(err, ordersapp.ErrInsufficientItems) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrorTypeInsufficientItems, err)
		}
		if errors.Is(err, ordersapp.ErrInvalidInput) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrorTypeInvalidInput, err)
		}
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", order.ID)
	return order, nil
}
