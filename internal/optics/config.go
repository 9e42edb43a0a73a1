// Package optics implements the facial measurement computation pipeline:
// converting detected landmark coordinates into calibrated optical distances
// and scoring whether the source photo is good enough to trust them. All
// computations are pure and side-effect free; the package holds no state
// beyond the configuration it was constructed with.
package optics

// Range is a closed plausibility interval in millimeters.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Calibration groups every capture assumption of the measurement engine.
// The defaults encode the nominal setup: a face photographed at 30 cm with a
// common phone camera. Alternate capture setups override these instead of
// touching code.
type Calibration struct {
	// NominalDistanceCM is the assumed camera-to-face distance the
	// MMPerPixel factor was derived for.
	NominalDistanceCM float64

	// MMPerPixel converts raw pixel distances to millimeters at the
	// nominal distance.
	MMPerPixel float64

	// FaceWidthRatio is the expected apparent face width as a fraction of
	// the image width when the subject is at the nominal distance.
	FaceWidthRatio float64

	// EyeToFaceWidth approximates the full face width as a multiple of the
	// inter-pupillary pixel distance.
	EyeToFaceWidth float64

	// CorrectionMin and CorrectionMax clamp the distance-correction factor.
	CorrectionMin float64
	CorrectionMax float64

	// Anatomical plausibility ranges, in millimeters.
	DPRange  Range
	DPNRange Range
	APRange  Range

	// AsymmetryToleranceMM is the maximum accepted left/right difference
	// before an asymmetry warning is raised.
	AsymmetryToleranceMM float64

	// MinConfidence is the detector confidence below which a low-confidence
	// warning is appended.
	MinConfidence float64
}

// DefaultCalibration returns the nominal 30 cm capture model.
func DefaultCalibration() Calibration {
	return Calibration{
		NominalDistanceCM:    30,
		MMPerPixel:           0.26458333,
		FaceWidthRatio:       0.6,
		EyeToFaceWidth:       3.0,
		CorrectionMin:        0.5,
		CorrectionMax:        2.0,
		DPRange:              Range{Min: 50, Max: 80},
		DPNRange:             Range{Min: 25, Max: 40},
		APRange:              Range{Min: 20, Max: 35},
		AsymmetryToleranceMM: 2.0,
		MinConfidence:        0.7,
	}
}

// QualityThresholds groups the pixel-statistics cutoffs of the quality
// analyzer. Strong bands feed both grading strategies; the borderline bands
// only matter for the weighted-point strategy.
type QualityThresholds struct {
	MinWidth  int
	MinHeight int
	// BorderlinePixels is the pixel-count floor for a borderline
	// resolution pass.
	BorderlinePixels int

	BrightnessMin float64
	BrightnessMax float64
	// Borderline brightness band, slightly wider than the strong band.
	BrightnessBorderlineMin float64
	BrightnessBorderlineMax float64

	SharpnessMin           float64
	SharpnessBorderlineMin float64

	// AngleTightDeg is the eye-line tilt accepted as a strong pass;
	// AngleLooseDeg the secondary tolerance band.
	AngleTightDeg float64
	AngleLooseDeg float64
}

// DefaultQualityThresholds returns the standard cutoffs.
func DefaultQualityThresholds() QualityThresholds {
	return QualityThresholds{
		MinWidth:                640,
		MinHeight:               480,
		BorderlinePixels:        320 * 240,
		BrightnessMin:           0.3,
		BrightnessMax:           0.9,
		BrightnessBorderlineMin: 0.2,
		BrightnessBorderlineMax: 0.95,
		SharpnessMin:            0.5,
		SharpnessBorderlineMin:  0.25,
		AngleTightDeg:           5,
		AngleLooseDeg:           15,
	}
}
