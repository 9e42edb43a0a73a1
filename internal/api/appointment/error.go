package appointment

import (
	"net/http"

	"github.com/developeragencia/visaomais/pkg/response"
)

var (
	ErrAppointmentNotFound   = response.NewError(http.StatusNotFound, "appointment not found")
	ErrInvalidScheduledAt    = response.NewError(http.StatusBadRequest, "invalid scheduled date")
	ErrScheduledInPast       = response.NewError(http.StatusBadRequest, "cannot schedule in the past")
	ErrSlotAlreadyTaken      = response.NewError(http.StatusConflict, "time slot already taken")
	ErrInvalidStatusChange   = response.NewError(http.StatusUnprocessableEntity, "invalid status transition")
	ErrCreateAppointment     = response.NewError(http.StatusInternalServerError, "failed to create appointment")
	ErrAppointmentNotAllowed = response.NewError(http.StatusForbidden, "appointment does not belong to user")
)
