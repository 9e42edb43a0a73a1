package franchiseHandler

import (
	franchiseService "github.com/developeragencia/visaomais/internal/api/franchise/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FranchiseHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	franchiseService franchiseService.IFranchiseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	franchiseService franchiseService.IFranchiseService,
) *FranchiseHandler {
	return &FranchiseHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		franchiseService: franchiseService,
	}
}

func (h *FranchiseHandler) Start(srv fiber.Router) {
	franchises := srv.Group("/franchises")

	franchises.Post("/", h.middleware.NewTokenMiddleware, h.CreateFranchise)
	franchises.Get("/", h.middleware.NewTokenMiddleware, h.GetFranchises)
	franchises.Get("/:id", h.middleware.NewTokenMiddleware, h.GetFranchiseByID)
	franchises.Get("/:id/users", h.middleware.NewTokenMiddleware, h.GetFranchiseUsers)
	franchises.Patch("/:id", h.middleware.NewTokenMiddleware, h.UpdateFranchise)
}
