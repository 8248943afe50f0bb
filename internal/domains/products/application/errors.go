package application

import (
	"errors"
	"fmt"

	"github.com/OleksandIadvigun/drugstore/internal/domains/products/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/products/ports"
)

// ErrInvalidInput signals the request violated a catalog invariant.
var ErrInvalidInput = errors.New("invalid product input")

// NotFoundError reports that no product exists for the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with id %d was not found", e.ID)
}

func mapError(err error, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	if errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrPriceTooHigh) ||
		errors.Is(err, domain.ErrNameTooLong) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
