package mapper

import (
	"github.com/shopspring/decimal"

	productsdomain "github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
)

// Product is the transport-layer shape of the catalog aggregate.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int32           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ToDomainProduct converts a transport product into the domain model without
// touching validation; invariants are the service's concern.
func ToDomainProduct(product Product) *productsdomain.Product {
	return &productsdomain.Product{
		ID:       product.ID,
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.Price,
	}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *productsdomain.Product) Product {
	if product == nil {
		return Product{Price: decimal.Zero}
	}
	return Product{
		ID:       product.ID,
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.Price,
	}
}

// FromDomainProducts maps a list of domain products to transport shapes.
func FromDomainProducts(products []*productsdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
