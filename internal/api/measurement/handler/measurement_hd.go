package measurementHandler

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/developeragencia/visaomais/internal/api/measurement"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/handlerUtil"
	jwtPkg "github.com/developeragencia/visaomais/pkg/jwt"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *MeasurementHandler) HandleMeasure(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing measurement request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req measurement.MeasureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	// Clients always measure themselves.
	if userData.Role == entity.RoleClient {
		req.ClientID = userData.ID
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var record entity.FacialMeasurement
	var report entity.MeasurementReport

	photoFile, err := ctx.FormFile("photo")
	switch {
	case err == nil:
		record, report, err = h.measurementService.MeasurePhoto(c, req.ClientID, userData.ID, photoFile)
	case req.PhotoBase64 != "":
		var data []byte
		data, err = base64.StdEncoding.DecodeString(req.PhotoBase64)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("photo_base64 is not valid base64"), ctx.Path())
		}
		record, report, err = h.measurementService.MeasureImageData(c, req.ClientID, userData.ID, data)
	default:
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("photo file or photo_base64 is required"), ctx.Path())
	}
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "measure_photo")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeMeasurementResponse(record, &report))
	}
}

func (h *MeasurementHandler) HandleCheckQuality(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	photoFile, err := ctx.FormFile("photo")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("photo file is required"), ctx.Path())
	}

	src, err := photoFile.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_photo")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_photo")
	}

	quality, err := h.measurementService.CheckQuality(c, data)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "check_quality")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, measurement.QualityCheckResponse{
			Quality: quality,
		})
	}
}

func (h *MeasurementHandler) HandleGetMeasurement(ctx *fiber.Ctx) error {
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
			errors.New("measurement ID is required"), ctx.Path())
	}

	record, err := h.measurementService.GetMeasurementByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_measurement")
	}

	if userData.Role == entity.RoleClient && record.ClientID != userData.ID {
		return errHandler.HandleForbidden(ctx, requestID, "Measurement belongs to another client")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeMeasurementResponse(record, nil))
	}
}

func (h *MeasurementHandler) HandleGetClientMeasurements(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	clientID := ctx.Params("client_id")
	if clientID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("client ID is required"), ctx.Path())
	}

	if userData.Role == entity.RoleClient && clientID != userData.ID {
		return errHandler.HandleForbidden(ctx, requestID, "Cannot read another client's measurements")
	}

	records, err := h.measurementService.GetMeasurementsByClient(c, clientID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_measurements")
	}

	responses := make([]measurement.MeasurementResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, makeMeasurementResponse(record, nil))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, measurement.MeasurementListResponse{
			Measurements: responses,
			Total:        len(responses),
		})
	}
}

func (h *MeasurementHandler) HandleGetLatestAccepted(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	clientID := ctx.Params("client_id")
	if clientID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("client ID is required"), ctx.Path())
	}

	if userData.Role == entity.RoleClient && clientID != userData.ID {
		return errHandler.HandleForbidden(ctx, requestID, "Cannot read another client's measurements")
	}

	record, err := h.measurementService.GetLatestAccepted(c, clientID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_latest_measurement")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeMeasurementResponse(record, nil))
	}
}

func makeMeasurementResponse(record entity.FacialMeasurement, report *entity.MeasurementReport) measurement.MeasurementResponse {
	resp := measurement.MeasurementResponse{
		ID:        record.ID,
		ClientID:  record.ClientID,
		UserID:    record.UserID,
		PhotoURL:  record.PhotoURL,
		Source:    record.Source,
		CreatedAt: record.CreatedAt,
	}

	if report != nil {
		resp.Report = *report
		return resp
	}

	// Rebuild the measurement part from the stored row when no fresh report
	// is available.
	resp.Report = entity.MeasurementReport{
		Measurement: entity.OpticalMeasurement{
			DP:         record.DP,
			DPNLeft:    record.DPNLeft,
			DPNRight:   record.DPNRight,
			APLeft:     record.APLeft,
			APRight:    record.APRight,
			Quality:    entity.MeasurementQuality(record.Quality),
			Confidence: record.Confidence,
			Warnings:   splitWarnings(record.Warnings),
		},
		Accepted: record.Accepted,
	}

	return resp
}

func splitWarnings(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ";")
}
