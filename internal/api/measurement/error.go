package measurement

import (
	"net/http"

	"github.com/developeragencia/visaomais/pkg/response"
)

var (
	ErrMeasurementNotFound  = response.NewError(http.StatusNotFound, "measurement not found")
	ErrInvalidImage         = response.NewError(http.StatusBadRequest, "invalid or unsupported image")
	ErrNoFaceDetected       = response.NewError(http.StatusUnprocessableEntity, "no face detected in image")
	ErrLandmarkDetection    = response.NewError(http.StatusUnprocessableEntity, "failed to locate facial landmarks")
	ErrClientNotFound       = response.NewError(http.StatusNotFound, "client not found")
	ErrCreateMeasurement    = response.NewError(http.StatusInternalServerError, "failed to store measurement")
	ErrMeasurementForbidden = response.NewError(http.StatusForbidden, "measurement belongs to another client")
)
