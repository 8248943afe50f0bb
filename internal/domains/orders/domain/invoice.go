package domain

import "github.com/shopspring/decimal"

// Invoice is the billing view of an order: its identity plus the computed total.
type Invoice struct {
	OrderID int64
	Total   decimal.Decimal
}

// InvoiceFor derives the invoice view of an order.
func InvoiceFor(order *Order) Invoice {
	if order == nil {
		return Invoice{Total: decimal.Zero}
	}
	return Invoice{OrderID: order.ID, Total: order.Total}
}
