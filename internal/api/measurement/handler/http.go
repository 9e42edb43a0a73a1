package measurementHandler

import (
	measurementService "github.com/developeragencia/visaomais/internal/api/measurement/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type MeasurementHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	measurementService measurementService.IMeasurementService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	measurementService measurementService.IMeasurementService,
) *MeasurementHandler {
	return &MeasurementHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		measurementService: measurementService,
	}
}

func (h *MeasurementHandler) Start(srv fiber.Router) {
	measurements := srv.Group("/measurements")

	measurements.Post("/", h.middleware.NewTokenMiddleware, h.HandleMeasure)
	measurements.Post("/quality", h.middleware.NewTokenMiddleware, h.HandleCheckQuality)
	measurements.Get("/client/:client_id", h.middleware.NewTokenMiddleware, h.HandleGetClientMeasurements)
	measurements.Get("/client/:client_id/latest", h.middleware.NewTokenMiddleware, h.HandleGetLatestAccepted)

	measurements.Use("/live", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	measurements.Get("/live", websocket.New(h.HandleLiveQuality))

	measurements.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetMeasurement)
}
