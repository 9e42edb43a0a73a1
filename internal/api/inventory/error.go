package inventory

import (
	"net/http"

	"github.com/developeragencia/visaomais/pkg/response"
)

var (
	ErrProductNotFound       = response.NewError(http.StatusNotFound, "product not found")
	ErrSKUAlreadyExists      = response.NewError(http.StatusConflict, "sku already exists in this franchise")
	ErrInvalidCategory       = response.NewError(http.StatusBadRequest, "invalid product category")
	ErrInsufficientStock     = response.NewError(http.StatusUnprocessableEntity, "insufficient stock")
	ErrInvalidMovementType   = response.NewError(http.StatusBadRequest, "invalid stock movement type")
	ErrCreateProduct         = response.NewError(http.StatusInternalServerError, "failed to create product")
	ErrUpdateProduct         = response.NewError(http.StatusInternalServerError, "failed to update product")
	ErrProductNotInFranchise = response.NewError(http.StatusForbidden, "product belongs to another franchise")
)
