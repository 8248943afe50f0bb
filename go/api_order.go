package drugstoreserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/OleksandIadvigun/drugstore/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	ordersports "github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the order ledger service and workflows.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /api/orders
// Create a new order from the submitted line items
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.placeOrder(c.Request.Context(), orderhttpmapper.ToLineItems(payload.OrderDetails))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(created))
}

func (api *OrderAPI) placeOrder(ctx context.Context, items []ordersdomain.LineItem) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, items)
	}
	return api.service.Create(ctx, items)
}

// Get /api/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /api/orders
// List all orders
func (api *OrderAPI) GetOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Put /api/orders/:orderId
// Replace the line items of an existing order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, orderhttpmapper.ToLineItems(payload.OrderDetails))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Delete /api/orders/:orderId
// Cancel an order, returning its last persisted state
func (api *OrderAPI) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	cancelled, err := api.service.Cancel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(cancelled))
}

// Get /api/orders/:orderId/invoice
// Billing view of an order
func (api *OrderAPI) GetOrderInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	invoice, err := api.service.Invoice(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainInvoice(invoice))
}
