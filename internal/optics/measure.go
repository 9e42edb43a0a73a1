package optics

import (
	"math"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

// Measurement warning texts. Out-of-range values are surfaced, never clamped.
const (
	WarnDPOutOfRange       = "DP fora da faixa anatômica esperada"
	WarnDPNLeftOutOfRange  = "DPN esquerda fora da faixa anatômica esperada"
	WarnDPNRightOutOfRange = "DPN direita fora da faixa anatômica esperada"
	WarnAPLeftOutOfRange   = "AP esquerda fora da faixa anatômica esperada"
	WarnAPRightOutOfRange  = "AP direita fora da faixa anatômica esperada"
	WarnDPNAsymmetry       = "assimetria acentuada entre DPN esquerda e direita"
	WarnAPAsymmetry        = "assimetria acentuada entre AP esquerda e direita"
	WarnLowConfidence      = "baixa confiança na detecção dos pontos faciais"
)

// Engine converts a landmark set plus image dimensions into calibrated
// optical measurements. It is stateless apart from its calibration and safe
// for concurrent use.
type Engine struct {
	cal Calibration
}

func NewEngine(cal Calibration) *Engine {
	return &Engine{cal: cal}
}

// Measure computes the five calibrated distances in millimeters.
//
// Pupillary heights are measured perpendicular to the line the eyes define,
// not to the image horizontal, so a tilted head does not inflate them. The
// distance-correction step rescales the fixed calibration for subjects
// closer or farther than the nominal distance using the apparent face width.
func (e *Engine) Measure(lm entity.LandmarkSet, width, height int) (entity.OpticalMeasurement, error) {
	if err := e.validate(lm, width, height); err != nil {
		return entity.OpticalMeasurement{}, err
	}

	dpRaw := geometry.Distance(lm.LeftEye, lm.RightEye)
	if dpRaw == 0 {
		return entity.OpticalMeasurement{}, newInputError("pupil landmarks are coincident")
	}

	dpnLeftRaw := geometry.Distance(lm.LeftEye, lm.Nose)
	dpnRightRaw := geometry.Distance(lm.RightEye, lm.Nose)

	theta := geometry.Angle(lm.LeftEye, lm.RightEye)
	sin, cos := math.Sincos(theta)

	// Component of the eye->nose vector orthogonal to the eye line.
	ldx := lm.LeftEye.X - lm.Nose.X
	ldy := lm.LeftEye.Y - lm.Nose.Y
	apLeftRaw := math.Abs(ldy*cos - ldx*sin)

	rdx := lm.RightEye.X - lm.Nose.X
	rdy := lm.RightEye.Y - lm.Nose.Y
	apRightRaw := math.Abs(rdy*cos - rdx*sin)

	scale := e.cal.MMPerPixel * e.correctionFactor(dpRaw, width)

	m := entity.OpticalMeasurement{
		DP:         dpRaw * scale,
		DPNLeft:    dpnLeftRaw * scale,
		DPNRight:   dpnRightRaw * scale,
		APLeft:     apLeftRaw * scale,
		APRight:    apRightRaw * scale,
		Confidence: lm.Confidence,
	}

	m.Warnings = e.validateMeasurement(m)
	m.Quality = gradeMeasurement(m.Warnings)

	return m, nil
}

// correctionFactor estimates how much larger or smaller the face appears in
// frame compared to the nominal capture distance, clamped so a wildly wrong
// landmark set cannot blow up the calibration.
func (e *Engine) correctionFactor(eyeDistancePx float64, width int) float64 {
	expectedFaceWidth := e.cal.FaceWidthRatio * float64(width)
	actualFaceWidth := e.cal.EyeToFaceWidth * eyeDistancePx

	factor := expectedFaceWidth / actualFaceWidth
	if factor < e.cal.CorrectionMin {
		return e.cal.CorrectionMin
	}
	if factor > e.cal.CorrectionMax {
		return e.cal.CorrectionMax
	}
	return factor
}

// WithinPlausibleRanges reports whether all five values fall inside their
// anatomical ranges. Used by the gate; asymmetry and confidence warnings do
// not affect it.
func (e *Engine) WithinPlausibleRanges(m entity.OpticalMeasurement) bool {
	return e.cal.DPRange.Contains(m.DP) &&
		e.cal.DPNRange.Contains(m.DPNLeft) &&
		e.cal.DPNRange.Contains(m.DPNRight) &&
		e.cal.APRange.Contains(m.APLeft) &&
		e.cal.APRange.Contains(m.APRight)
}

func (e *Engine) validate(lm entity.LandmarkSet, width, height int) error {
	if width <= 0 || height <= 0 {
		return newInputError("image dimensions must be positive")
	}

	coords := []float64{
		lm.LeftEye.X, lm.LeftEye.Y,
		lm.RightEye.X, lm.RightEye.Y,
		lm.Nose.X, lm.Nose.Y,
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return newInputError("landmark coordinate is not finite")
		}
	}

	if math.IsNaN(lm.Confidence) || lm.Confidence < 0 || lm.Confidence > 1 {
		return newInputError("confidence must be within [0,1]")
	}

	return nil
}

func (e *Engine) validateMeasurement(m entity.OpticalMeasurement) []string {
	var warnings []string

	if !e.cal.DPRange.Contains(m.DP) {
		warnings = append(warnings, WarnDPOutOfRange)
	}
	if !e.cal.DPNRange.Contains(m.DPNLeft) {
		warnings = append(warnings, WarnDPNLeftOutOfRange)
	}
	if !e.cal.DPNRange.Contains(m.DPNRight) {
		warnings = append(warnings, WarnDPNRightOutOfRange)
	}
	if !e.cal.APRange.Contains(m.APLeft) {
		warnings = append(warnings, WarnAPLeftOutOfRange)
	}
	if !e.cal.APRange.Contains(m.APRight) {
		warnings = append(warnings, WarnAPRightOutOfRange)
	}

	if math.Abs(m.DPNLeft-m.DPNRight) > e.cal.AsymmetryToleranceMM {
		warnings = append(warnings, WarnDPNAsymmetry)
	}
	if math.Abs(m.APLeft-m.APRight) > e.cal.AsymmetryToleranceMM {
		warnings = append(warnings, WarnAPAsymmetry)
	}

	if m.Confidence < e.cal.MinConfidence {
		warnings = append(warnings, WarnLowConfidence)
	}

	return warnings
}

func gradeMeasurement(warnings []string) entity.MeasurementQuality {
	switch {
	case len(warnings) == 0:
		return entity.QualityHigh
	case len(warnings) <= 2:
		return entity.QualityMedium
	default:
		return entity.QualityLow
	}
}
