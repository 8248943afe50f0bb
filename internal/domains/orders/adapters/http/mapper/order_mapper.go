package mapper

import (
	"github.com/shopspring/decimal"

	ordersdomain "github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
)

// OrderDetail is the transport-layer shape of a single line item. Name and
// price are the snapshot captured at order time, supplied by the caller.
type OrderDetail struct {
	ID        int64           `json:"id,omitempty"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
}

// Order is the transport-layer shape of the order aggregate.
type Order struct {
	ID           int64           `json:"id"`
	OrderDetails []OrderDetail   `json:"orderDetails"`
	Total        decimal.Decimal `json:"total"`
}

// OrderRequest is the inbound payload for create and update operations. The
// whole detail list is submitted each time; updates replace, never patch.
type OrderRequest struct {
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// OrderInvoice is the billing view exposed over the wire.
type OrderInvoice struct {
	OrderID int64           `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// ToLineItems converts transport details into domain line item snapshots.
func ToLineItems(details []OrderDetail) []ordersdomain.LineItem {
	items := make([]ordersdomain.LineItem, 0, len(details))
	for _, detail := range details {
		items = append(items, ordersdomain.LineItem{
			ID:        detail.ID,
			ProductID: detail.ProductID,
			Name:      detail.Name,
			UnitPrice: detail.Price,
			Quantity:  detail.Quantity,
		})
	}
	return items
}

// ToDomainOrder converts a transport order into the domain model without
// touching validation; invariants are the service's concern.
func ToDomainOrder(order Order) *ordersdomain.Order {
	return &ordersdomain.Order{
		ID:        order.ID,
		LineItems: ToLineItems(order.OrderDetails),
		Total:     order.Total,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{Total: decimal.Zero}
	}
	details := make([]OrderDetail, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		details = append(details, OrderDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return Order{ID: order.ID, OrderDetails: details, Total: order.Total}
}

// FromDomainOrders maps a list of domain orders to transport shapes.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

// FromDomainInvoice converts the invoice view to its transport shape.
func FromDomainInvoice(invoice ordersdomain.Invoice) OrderInvoice {
	return OrderInvoice{OrderID: invoice.OrderID, Total: invoice.Total}
}
