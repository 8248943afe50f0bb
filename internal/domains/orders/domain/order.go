package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNoLineItems       = errors.New("order must contain at least one line item")
	ErrInvalidProductID  = errors.New("line item product id must be greater than zero")
	ErrInvalidQuantity   = errors.New("line item quantity must be greater than zero")
	ErrNegativeUnitPrice = errors.New("line item unit price must not be negative")
)

// LineItem is a frozen snapshot of a product at the moment it was added to an
// order. Name and UnitPrice are copied by value and never re-read from the
// catalog, so later product changes leave historical orders untouched.
type LineItem struct {
	ID        int64
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

// Validate enforces the line item invariants.
func (li LineItem) Validate() error {
	if li.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if li.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if li.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	return nil
}

// Subtotal returns unit price times quantity in exact decimal arithmetic.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order models the purchase aggregate. Total is derived from LineItems and is
// never settable by a caller.
type Order struct {
	ID        int64
	LineItems []LineItem
	Total     decimal.Decimal
}

// NewOrder validates and constructs a new Order aggregate with a computed total.
func NewOrder(id int64, items []LineItem) (*Order, error) {
	order := &Order{ID: id}
	if err := order.ReplaceLineItems(items); err != nil {
		return nil, err
	}
	return order, nil
}

// ReplaceLineItems swaps the entire line item list and recomputes the total.
// Replacement is wholesale: nothing from the prior list survives.
func (o *Order) ReplaceLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoLineItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.LineItems = append([]LineItem{}, items...)
	o.Total = Total(o.LineItems)
	return nil
}

// Validate enforces invariants on the aggregate as a whole.
func (o *Order) Validate() error {
	if len(o.LineItems) == 0 {
		return ErrNoLineItems
	}
	for _, item := range o.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if !o.Total.Equal(Total(o.LineItems)) {
		return errors.New("order total does not match its line items")
	}
	return nil
}

// Total folds the line items into an exact decimal sum of unit price times
// quantity, starting from zero.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
