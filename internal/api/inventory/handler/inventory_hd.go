package inventoryHandler

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/developeragencia/visaomais/internal/api/inventory"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *InventoryHandler) CreateProduct(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create product request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role != entity.RoleAdmin && userData.Role != entity.RoleFranchiseManager {
		return errHandler.HandleForbidden(ctx, requestID, "Insufficient permissions")
	}

	var req inventory.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Managers only manage products in their own franchise.
	if userData.Role == entity.RoleFranchiseManager && req.FranchiseID != userData.FranchiseID {
		return errHandler.HandleForbidden(ctx, requestID, "Cannot create products in another franchise")
	}

	var photoFile *multipart.FileHeader
	if file, err := ctx.FormFile("photo"); err == nil {
		photoFile = file
	}

	p, err := h.inventoryService.CreateProduct(c, req, photoFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_product")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeProductResponse(p))
	}
}

func (h *InventoryHandler) GetProducts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	franchiseID := userData.FranchiseID
	if userData.Role == entity.RoleAdmin {
		franchiseID = ctx.Query("franchise_id")
	}

	if franchiseID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("franchise_id is required"), ctx.Path())
	}

	lowStockOnly := ctx.QueryBool("low_stock")

	products, err := h.inventoryService.GetProductsByFranchise(c, franchiseID, lowStockOnly)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_products")
	}

	responses := make([]inventory.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, makeProductResponse(p))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, inventory.ProductListResponse{
			Products: responses,
			Total:    len(responses),
		})
	}
}

func (h *InventoryHandler) GetProductByID(ctx *fiber.Ctx) error {
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
			errors.New("product ID is required"), ctx.Path())
	}

	p, err := h.inventoryService.GetProductByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_product")
	}

	if userData.Role != entity.RoleAdmin && p.FranchiseID != userData.FranchiseID {
		return errHandler.HandleForbidden(ctx, requestID, "Product belongs to another franchise")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeProductResponse(p))
	}
}

func (h *InventoryHandler) UpdateProduct(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

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
			errors.New("product ID is required"), ctx.Path())
	}

	var req inventory.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	franchiseScope := userData.FranchiseID
	if userData.Role == entity.RoleAdmin {
		franchiseScope = ""
	}

	if err := h.inventoryService.UpdateProduct(c, id, franchiseScope, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_product")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Product updated successfully",
		})
	}
}

func (h *InventoryHandler) RegisterMovement(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing stock movement request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role == entity.RoleClient {
		return errHandler.HandleForbidden(ctx, requestID, "Insufficient permissions")
	}

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("product ID is required"), ctx.Path())
	}

	var req inventory.StockMovementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	franchiseScope := userData.FranchiseID
	if userData.Role == entity.RoleAdmin {
		franchiseScope = ""
	}

	if err := h.inventoryService.RegisterMovement(c, id, userData.ID, franchiseScope, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_movement")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Stock movement registered successfully",
		})
	}
}

func (h *InventoryHandler) GetMovements(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if userData.Role == entity.RoleClient {
		return errHandler.HandleForbidden(ctx, requestID, "Insufficient permissions")
	}

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("product ID is required"), ctx.Path())
	}

	p, err := h.inventoryService.GetProductByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_product")
	}

	if userData.Role != entity.RoleAdmin && p.FranchiseID != userData.FranchiseID {
		return errHandler.HandleForbidden(ctx, requestID, "Product belongs to another franchise")
	}

	movements, err := h.inventoryService.GetMovementsByProduct(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_movements")
	}

	responses := make([]inventory.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		responses = append(responses, makeMovementResponse(m))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, responses)
	}
}

func makeProductResponse(p entity.Product) inventory.ProductResponse {
	return inventory.ProductResponse{
		ID:          p.ID,
		FranchiseID: p.FranchiseID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Brand:       p.Brand,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.BelowMinStock(),
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func makeMovementResponse(m entity.StockMovement) inventory.StockMovementResponse {
	return inventory.StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}
