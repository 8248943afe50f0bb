package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	orderactivities "github.com/OleksandIadvigun/drugstore/internal/platform/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the activities needed to persist an
// order aggregate.
func RunOrderPersistenceSequence(ctx workflow.Context, input orderactivities.PlaceOrderInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "lineItems", len(input.LineItems))
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	var order ordersdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), orderactivities.PersistOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order persistence sequence failed", "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence persisted", "orderId", order.ID)
	return &order, nil
}
