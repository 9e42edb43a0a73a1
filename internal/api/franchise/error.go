package franchise

import (
	"net/http"

	"github.com/developeragencia/visaomais/pkg/response"
)

var (
	ErrFranchiseNotFound      = response.NewError(http.StatusNotFound, "franchise not found")
	ErrCNPJAlreadyRegistered  = response.NewError(http.StatusConflict, "cnpj already registered")
	ErrInvalidFranchiseStatus = response.NewError(http.StatusBadRequest, "invalid franchise status")
	ErrFranchiseNotActive     = response.NewError(http.StatusUnprocessableEntity, "franchise is not active")
	ErrCreateFranchise        = response.NewError(http.StatusInternalServerError, "failed to create franchise")
	ErrUpdateFranchise        = response.NewError(http.StatusInternalServerError, "failed to update franchise")
)
