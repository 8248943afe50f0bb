package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Valid(t *testing.T) {
	product, err := NewProduct(1, "paracetamol", 10, decimal.RequireFromString("4.99"))
	require.NoError(t, err)
	require.Equal(t, "paracetamol", product.Name)
}

func TestValidate_NameTooLong(t *testing.T) {
	product := &Product{Name: strings.Repeat("a", MaxNameLength+1), Price: decimal.NewFromInt(1)}
	require.ErrorIs(t, product.Validate(), ErrNameTooLong)

	product.Name = strings.Repeat("a", MaxNameLength)
	require.NoError(t, product.Validate())
}

func TestValidate_PriceBounds(t *testing.T) {
	product := &Product{Name: "vitamin c", Price: decimal.RequireFromString("-0.01")}
	require.ErrorIs(t, product.Validate(), ErrNegativePrice)

	product.Price = MaxPrice.Add(decimal.RequireFromString("0.01"))
	require.ErrorIs(t, product.Validate(), ErrPriceTooHigh)

	product.Price = MaxPrice
	require.NoError(t, product.Validate())
}

func TestOverwrite_ReplacesEveryFieldExceptID(t *testing.T) {
	product, err := NewProduct(5, "bandage", 100, decimal.RequireFromString("2.50"))
	require.NoError(t, err)

	require.NoError(t, product.Overwrite(Product{Name: "plaster", Price: decimal.RequireFromString("1.25")}))
	require.Equal(t, int64(5), product.ID)
	require.Equal(t, "plaster", product.Name)
	require.Equal(t, int32(0), product.Quantity, "omitted quantity must be zeroed, not preserved")
	require.True(t, product.Price.Equal(decimal.RequireFromString("1.25")))
}

func TestOverwrite_RejectsInvalidReplacement(t *testing.T) {
	product, err := NewProduct(5, "bandage", 100, decimal.RequireFromString("2.50"))
	require.NoError(t, err)

	err = product.Overwrite(Product{Name: "plaster", Price: decimal.RequireFromString("-1")})
	require.ErrorIs(t, err, ErrNegativePrice)
	// Failed overwrite leaves the aggregate untouched.
	require.Equal(t, "bandage", product.Name)
	require.Equal(t, int32(100), product.Quantity)
}
