package entity

import (
	"time"

	"github.com/developeragencia/visaomais/pkg/geometry"
)

// MeasurementQuality is the tri-level grade shared by the quality analyzer
// and the measurement engine.
type MeasurementQuality string

const (
	QualityHigh   MeasurementQuality = "alta"
	QualityMedium MeasurementQuality = "media"
	QualityLow    MeasurementQuality = "baixa"
)

// LandmarkSource identifies which collaborator produced the landmarks.
type LandmarkSource string

const (
	SourceLocalDetector LandmarkSource = "pigo"
	SourceVisionModel   LandmarkSource = "gemini"
)

// LandmarkSet is the three-point landmark contract consumed by the
// measurement engine and the quality analyzer. It is produced by a detection
// collaborator and never mutated afterwards.
type LandmarkSet struct {
	LeftEye    geometry.Point `json:"left_eye"`
	RightEye   geometry.Point `json:"right_eye"`
	Nose       geometry.Point `json:"nose"`
	Confidence float64        `json:"confidence"`
}

// OpticalMeasurement holds the five calibrated distances in millimeters.
// Out-of-range and asymmetric values are flagged in Warnings, never clamped;
// disposition is a business decision upstream.
type OpticalMeasurement struct {
	DP         float64            `json:"dp"`
	DPNLeft    float64            `json:"dpn_left"`
	DPNRight   float64            `json:"dpn_right"`
	APLeft     float64            `json:"ap_left"`
	APRight    float64            `json:"ap_right"`
	Quality    MeasurementQuality `json:"quality"`
	Confidence float64            `json:"confidence"`
	Warnings   []string           `json:"warnings"`
}

// QualityMetric is one scored aspect of an image.
type QualityMetric struct {
	Value  float64 `json:"value"`
	IsGood bool    `json:"is_good"`
}

// QualityReport is the advisory assessment of whether a photo is usable for
// measurement. Produced fresh per image.
type QualityReport struct {
	IsGood     bool               `json:"is_good"`
	Quality    MeasurementQuality `json:"quality"`
	Message    string             `json:"message"`
	Resolution QualityMetric      `json:"resolution"`
	Brightness QualityMetric      `json:"brightness"`
	Sharpness  QualityMetric      `json:"sharpness"`
	FaceAngle  QualityMetric      `json:"face_angle"`
}

// MeasurementReport combines both pipeline stages with the gate decision.
type MeasurementReport struct {
	Measurement OpticalMeasurement `json:"measurement"`
	Quality     QualityReport      `json:"quality"`
	Accepted    bool               `json:"accepted"`
	Reason      string             `json:"reason,omitempty"`
}

// FacialMeasurement is the persisted record of an accepted or rejected
// measurement attempt.
type FacialMeasurement struct {
	ID         string    `db:"id"`
	ClientID   string    `db:"client_id"`
	UserID     string    `db:"user_id"`
	PhotoURL   string    `db:"photo_url"`
	Source     string    `db:"source"`
	DP         float64   `db:"dp"`
	DPNLeft    float64   `db:"dpn_left"`
	DPNRight   float64   `db:"dpn_right"`
	APLeft     float64   `db:"ap_left"`
	APRight    float64   `db:"ap_right"`
	Quality    string    `db:"quality"`
	Confidence float64   `db:"confidence"`
	Warnings   string    `db:"warnings"`
	Accepted   bool      `db:"accepted"`
	CreatedAt  time.Time `db:"created_at"`
}
