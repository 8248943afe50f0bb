package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxNameLength and MaxPrice bound what the catalog accepts at write time.
const MaxNameLength = 250

var MaxPrice = decimal.NewFromInt(10_000_000)

var (
	ErrNegativePrice = errors.New("product price must not be negative")
	ErrPriceTooHigh  = errors.New("product price must be lower than 10000000")
	ErrNameTooLong   = errors.New("product name length must be lower than 250")
)

// Product represents a sellable catalog item. Orders hold frozen copies of
// Name and Price, never a live reference, so a Product can change or disappear
// without touching historical orders.
type Product struct {
	ID       int64
	Name     string
	Quantity int32
	Price    decimal.Decimal
}

// NewProduct validates and constructs a new Product aggregate.
func NewProduct(id int64, name string, quantity int32, price decimal.Decimal) (*Product, error) {
	product := &Product{ID: id, Name: name, Quantity: quantity, Price: price}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces the write-time invariants.
func (p *Product) Validate() error {
	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Price.GreaterThan(MaxPrice) {
		return ErrPriceTooHigh
	}
	return nil
}

// Overwrite replaces every field except ID with the fields of the supplied
// value. A caller that omits a field gets it zeroed, not preserved.
func (p *Product) Overwrite(other Product) error {
	replacement := Product{ID: p.ID, Name: other.Name, Quantity: other.Quantity, Price: other.Price}
	if err := replacement.Validate(); err != nil {
		return err
	}
	*p = replacement
	return nil
}
