package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func item(productID int64, price string, qty int32) LineItem {
	return LineItem{
		ProductID: productID,
		Name:      "aspirin",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestNewOrder_ComputesTotal(t *testing.T) {
	order, err := NewOrder(1, []LineItem{
		item(1, "20.00", 2),
		item(2, "30.00", 2),
	})
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.RequireFromString("100.00")),
		"expected 100.00, got %s", order.Total)
}

func TestNewOrder_RejectsEmptyLineItems(t *testing.T) {
	_, err := NewOrder(1, nil)
	require.ErrorIs(t, err, ErrNoLineItems)
}

func TestLineItem_Validate(t *testing.T) {
	require.ErrorIs(t, item(0, "1.00", 1).Validate(), ErrInvalidProductID)
	require.ErrorIs(t, item(1, "1.00", 0).Validate(), ErrInvalidQuantity)
	require.ErrorIs(t, item(1, "-0.01", 1).Validate(), ErrNegativeUnitPrice)
	require.NoError(t, item(1, "0.00", 1).Validate())
}

func TestReplaceLineItems_IsWholesale(t *testing.T) {
	order, err := NewOrder(1, []LineItem{item(1, "5.00", 1)})
	require.NoError(t, err)

	require.NoError(t, order.ReplaceLineItems([]LineItem{item(2, "7.50", 2)}))
	require.Len(t, order.LineItems, 1)
	require.Equal(t, int64(2), order.LineItems[0].ProductID)
	require.True(t, order.Total.Equal(decimal.RequireFromString("15.00")))
}

func TestReplaceLineItems_DoesNotAliasCallerSlice(t *testing.T) {
	items := []LineItem{item(1, "5.00", 1)}
	order, err := NewOrder(1, items)
	require.NoError(t, err)

	items[0].Quantity = 99
	require.Equal(t, int32(1), order.LineItems[0].Quantity)
}

func TestTotal_ExactDecimalFold(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	total := Total([]LineItem{
		item(1, "0.10", 1),
		item(2, "0.20", 1),
	})
	require.True(t, total.Equal(decimal.RequireFromString("0.30")), "got %s", total)
}

func TestInvoiceFor_CarriesOrderTotal(t *testing.T) {
	order, err := NewOrder(7, []LineItem{item(1, "12.34", 3)})
	require.NoError(t, err)

	invoice := InvoiceFor(order)
	require.Equal(t, int64(7), invoice.OrderID)
	require.True(t, invoice.Total.Equal(decimal.RequireFromString("37.02")))
}
