package franchiseHandler

import (
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/franchise"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *FranchiseHandler) CreateFranchise(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create franchise request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role != entity.RoleAdmin {
		return errHandler.HandleForbidden(ctx, requestID, "Only admins can create franchises")
	}

	var req franchise.CreateFranchiseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	f, err := h.franchiseService.CreateFranchise(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_franchise")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeFranchiseResponse(f))
	}
}

func (h *FranchiseHandler) GetFranchises(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	status := ctx.Query("status")

	franchises, err := h.franchiseService.GetFranchises(c, status)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_franchises")
	}

	responses := make([]franchise.FranchiseResponse, 0, len(franchises))
	for _, f := range franchises {
		responses = append(responses, makeFranchiseResponse(f))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, franchise.FranchiseListResponse{
			Franchises: responses,
			Total:      len(responses),
		})
	}
}

func (h *FranchiseHandler) GetFranchiseByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("franchise ID is required"), ctx.Path())
	}

	f, err := h.franchiseService.GetFranchiseByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_franchise")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeFranchiseResponse(f))
	}
}

func (h *FranchiseHandler) GetFranchiseUsers(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("franchise ID is required"), ctx.Path())
	}

	switch userData.Role {
	case entity.RoleAdmin:
	case entity.RoleFranchiseManager:
		if userData.FranchiseID != id {
			return errHandler.HandleForbidden(ctx, requestID, "Cannot list users of another franchise")
		}
	default:
		return errHandler.HandleForbidden(ctx, requestID, "Insufficient permissions")
	}

	users, err := h.franchiseService.GetFranchiseUsers(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_franchise_users")
	}

	responses := make([]franchise.FranchiseUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, franchise.FranchiseUserResponse{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Phone:    u.PhoneNumber,
			Role:     u.Role,
			IsActive: u.IsActive,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, franchise.FranchiseUserListResponse{
			Users: responses,
			Total: len(responses),
		})
	}
}

func (h *FranchiseHandler) UpdateFranchise(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update franchise request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role != entity.RoleAdmin && userData.Role != entity.RoleFranchiseManager {
		return errHandler.HandleForbidden(ctx, requestID, "Insufficient permissions")
	}

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("franchise ID is required"), ctx.Path())
	}

	// Managers can only update their own franchise.
	if userData.Role == entity.RoleFranchiseManager && userData.FranchiseID != id {
		return errHandler.HandleForbidden(ctx, requestID, "Cannot update another franchise")
	}

	var req franchise.UpdateFranchiseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.franchiseService.UpdateFranchise(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_franchise")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Franchise updated successfully",
		})
	}
}

func makeFranchiseResponse(f entity.Franchise) franchise.FranchiseResponse {
	return franchise.FranchiseResponse{
		ID:        f.ID,
		Name:      f.Name,
		CNPJ:      f.CNPJ,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
