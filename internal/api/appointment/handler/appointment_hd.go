package appointmentHandler

import (
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/appointment"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AppointmentHandler) CreateAppointment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create appointment request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req appointment.CreateAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	// Clients always book for themselves.
	if userData.Role == entity.RoleClient {
		req.ClientID = userData.ID
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	a, err := h.appointmentService.CreateAppointment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_appointment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeAppointmentResponse(a))
	}
}

func (h *AppointmentHandler) GetAppointments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var day time.Time
	if dateParam := ctx.Query("date"); dateParam != "" {
		day, err = time.Parse("2006-01-02", dateParam)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("date must be in YYYY-MM-DD format"), ctx.Path())
		}
	}

	listFranchise := func(franchiseID string) ([]entity.Appointment, error) {
		if !day.IsZero() {
			return h.appointmentService.GetAppointmentsByFranchiseAndDay(c, franchiseID, day)
		}
		return h.appointmentService.GetAppointmentsByFranchise(c, franchiseID)
	}

	var appointments []entity.Appointment
	switch userData.Role {
	case entity.RoleClient:
		appointments, err = h.appointmentService.GetAppointmentsByClient(c, userData.ID)
	case entity.RoleFranchiseManager, entity.RoleAttendant:
		appointments, err = listFranchise(userData.FranchiseID)
	default:
		franchiseID := ctx.Query("franchise_id")
		if franchiseID == "" {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("franchise_id query parameter is required"), ctx.Path())
		}
		appointments, err = listFranchise(franchiseID)
	}
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_appointments")
	}

	responses := make([]appointment.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		responses = append(responses, makeAppointmentResponse(a))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, appointment.AppointmentListResponse{
			Appointments: responses,
			Total:        len(responses),
		})
	}
}

func (h *AppointmentHandler) GetAppointmentByID(ctx *fiber.Ctx) error {
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
			errors.New("appointment ID is required"), ctx.Path())
	}

	a, err := h.appointmentService.GetAppointmentByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_appointment")
	}

	if userData.Role == entity.RoleClient && a.ClientID != userData.ID {
		return errHandler.Handle(ctx, requestID, appointment.ErrAppointmentNotAllowed, ctx.Path(), "get_appointment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeAppointmentResponse(a))
	}
}

func (h *AppointmentHandler) UpdateAppointmentStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update appointment status request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("appointment ID is required"), ctx.Path())
	}

	var req appointment.UpdateAppointmentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.appointmentService.UpdateAppointmentStatus(c, id, req.Status); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_appointment_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Appointment status updated",
		})
	}
}

func makeAppointmentResponse(a entity.Appointment) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		ID:           a.ID,
		FranchiseID:  a.FranchiseID,
		ClientID:     a.ClientID,
		AttendantID:  a.AttendantID,
		ScheduledAt:  a.ScheduledAt,
		Status:       a.Status,
		Notes:        a.Notes,
		ReminderSent: a.ReminderSent,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
