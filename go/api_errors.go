package drugstoreserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/OleksandIadvigun/drugstore/internal/domains/orders/application"
	productsapp "github.com/OleksandIadvigun/drugstore/internal/domains/products/application"
	apierrors "github.com/OleksandIadvigun/drugstore/internal/shared/errors"
)

// responder translates the ledger and catalog error taxonomy into RFC 7807
// problem documents. NoOrdersFound intentionally maps to 404 to keep the wire
// contract of the original API.
var responder = apierrors.NewChainedResponder("", orderErrorMapper, productErrorMapper)

func orderErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var notFound *ordersapp.NotFoundError
	if errors.As(err, &notFound) {
		return apierrors.NewNotFoundProblem("Order", notFound.ID), true
	}
	if errors.Is(err, ordersapp.ErrNoOrders) {
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	if errors.Is(err, ordersapp.ErrInsufficientItems) || errors.Is(err, ordersapp.ErrInvalidInput) {
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func productErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var notFound *productsapp.NotFoundError
	if errors.As(err, &notFound) {
		return apierrors.NewNotFoundProblem("Product", notFound.ID), true
	}
	if errors.Is(err, productsapp.ErrInvalidInput) {
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondServiceError maps a service error through the responder chain.
func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

// respondProblem sends a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// parseIDParam extracts a positive int64 path parameter or responds 400.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("invalid "+name+" path parameter"))
		return 0, false
	}
	return id, true
}

// respondError preserves plain status call sites while returning RFC 7807 responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}
