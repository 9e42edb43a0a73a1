package handlerUtil

import (
	"errors"

	"github.com/developeragencia/visaomais/internal/api/auth"
	"github.com/developeragencia/visaomais/internal/optics"
	"github.com/developeragencia/visaomais/pkg/log"
	"github.com/developeragencia/visaomais/pkg/pigo"
	"github.com/developeragencia/visaomais/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	// Auth domain errors
	if errors.Is(err, auth.ErrUserNotFound) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("User not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"code":    "USER_NOT_FOUND",
		})
	}

	if errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid email or password")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid email or password",
			"code":    "INVALID_CREDENTIALS",
		})
	}

	if errors.Is(err, auth.ErrorTokenExpired) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("OTP has expired")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "OTP has expired",
			"code":    "EXPIRED_OTP",
		})
	}

	if errors.Is(err, auth.ErrorInvalidToken) || errors.Is(err, auth.ErrInvalidOTP) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid OTP provided")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid OTP provided",
			"code":    "INVALID_OTP",
		})
	}

	if errors.Is(err, auth.ErrPasswordSame) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("New password is the same as old password")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "New password cannot be the same as old password",
			"code":    "PASSWORD_SAME",
		})
	}

	if errors.Is(err, auth.ErrInvalidFileType) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Invalid file type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only images are allowed.",
		})
	}

	if errors.Is(err, auth.ErrFileTooLarge) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("File too large")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File too large. Maximum size is 5MB.",
		})
	}

	if errors.Is(err, auth.ErrFailedToUploadFile) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Failed to upload file")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload file",
		})
	}

	// Measurement pipeline errors
	if optics.IsInputError(err) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Measurement input rejected")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "INVALID_MEASUREMENT_INPUT",
		})
	}

	if errors.Is(err, pigo.ErrNoFaceDetected) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("No face found in submitted image")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No face detected in image",
			"code":  "NO_FACE_DETECTED",
		})
	}

	if errors.Is(err, pigo.ErrLandmarkFailed) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Landmark localization failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Failed to locate facial landmarks",
			"code":  "LANDMARK_DETECTION_FAILED",
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleForbidden(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Forbidden access")

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": message,
		"code":  "FORBIDDEN",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
