package appointmentHandler

import (
	appointmentService "github.com/developeragencia/visaomais/internal/api/appointment/service"
	"github.com/developeragencia/visaomais/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	appointmentService appointmentService.IAppointmentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	appointmentService appointmentService.IAppointmentService,
) *AppointmentHandler {
	return &AppointmentHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		appointmentService: appointmentService,
	}
}

func (h *AppointmentHandler) Start(srv fiber.Router) {
	appointments := srv.Group("/appointments")

	appointments.Post("/", h.middleware.NewTokenMiddleware, h.CreateAppointment)
	appointments.Get("/", h.middleware.NewTokenMiddleware, h.GetAppointments)
	appointments.Get("/:id", h.middleware.NewTokenMiddleware, h.GetAppointmentByID)
	appointments.Patch("/:id/status", h.middleware.NewTokenMiddleware, h.UpdateAppointmentStatus)
}
