package inventoryHandler

import (
	inventoryService "github.com/developeragencia/visaomais/internal/api/inventory/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InventoryHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	inventoryService inventoryService.IInventoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	inventoryService inventoryService.IInventoryService,
) *InventoryHandler {
	return &InventoryHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		inventoryService: inventoryService,
	}
}

func (h *InventoryHandler) Start(srv fiber.Router) {
	products := srv.Group("/products")

	products.Post("/", h.middleware.NewTokenMiddleware, h.CreateProduct)
	products.Get("/", h.middleware.NewTokenMiddleware, h.GetProducts)
	products.Get("/:id", h.middleware.NewTokenMiddleware, h.GetProductByID)
	products.Patch("/:id", h.middleware.NewTokenMiddleware, h.UpdateProduct)
	products.Post("/:id/movements", h.middleware.NewTokenMiddleware, h.RegisterMovement)
	products.Get("/:id/movements", h.middleware.NewTokenMiddleware, h.GetMovements)
}
