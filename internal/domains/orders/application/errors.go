package application

import (
	"errors"
	"fmt"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request violated a line item invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrInsufficientItems signals an order operation was given zero line items.
	ErrInsufficientItems = errors.New("you have to add minimum one product to create the order")
	// ErrNoOrders signals the order store was empty at list time.
	ErrNoOrders = errors.New("no orders were found")
)

// NotFoundError reports that no order exists for the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order with %d was not found", e.ID)
}

func mapError(err error, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	if errors.Is(err, domain.ErrNoLineItems) {
		return ErrInsufficientItems
	}
	if errors.Is(err, domain.ErrInvalidProductID) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrNegativeUnitPrice) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
