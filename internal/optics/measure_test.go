package optics

import (
	"math"
	"slices"
	"testing"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

// cleanLandmarks is a fixture sized so the distance correction is exactly
// 1.0 (expected face width 0.6*1190 = 714 px equals 3x the 238 px eye
// distance) and every resulting value sits inside its anatomical range.
func cleanLandmarks() (entity.LandmarkSet, int, int) {
	return entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 200, Y: 300},
		RightEye:   geometry.Point{X: 438, Y: 300},
		Nose:       geometry.Point{X: 319, Y: 390},
		Confidence: 0.95,
	}, 1190, 1600
}

func TestMeasureCleanFixture(t *testing.T) {
	lm, w, h := cleanLandmarks()
	engine := NewEngine(DefaultCalibration())

	m, err := engine.Measure(lm, w, h)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// 238 px * 0.26458333 mm/px, correction factor 1.0.
	if math.Abs(m.DP-62.9708) > 0.01 {
		t.Errorf("DP = %v, want 62.9708 +- 0.01", m.DP)
	}
	if math.Abs(m.APLeft-23.8125) > 0.01 {
		t.Errorf("APLeft = %v, want 23.8125 +- 0.01", m.APLeft)
	}
	if math.Abs(m.APLeft-m.APRight) > 1e-9 {
		t.Errorf("expected symmetric AP, got left=%v right=%v", m.APLeft, m.APRight)
	}
	if len(m.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", m.Warnings)
	}
	if m.Quality != entity.QualityHigh {
		t.Errorf("Quality = %v, want %v", m.Quality, entity.QualityHigh)
	}
	if m.Confidence != lm.Confidence {
		t.Errorf("Confidence = %v, want %v", m.Confidence, lm.Confidence)
	}
	if !engine.WithinPlausibleRanges(m) {
		t.Error("clean fixture should be within plausible ranges")
	}
}

func TestMeasureCorrectionClampHigh(t *testing.T) {
	// Eyes only 60 px apart in a 640 px wide frame: the raw factor is
	// 384/180 = 2.13 and must clamp to 2.0.
	lm := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 100, Y: 100},
		RightEye:   geometry.Point{X: 160, Y: 100},
		Nose:       geometry.Point{X: 130, Y: 130},
		Confidence: 0.9,
	}
	engine := NewEngine(DefaultCalibration())

	m, err := engine.Measure(lm, 640, 480)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// 60 px * 0.26458333 * 2.0
	if math.Abs(m.DP-31.75) > 0.01 {
		t.Errorf("DP = %v, want 31.75 +- 0.01", m.DP)
	}
	// Nose directly below the midpoint of a horizontal eye line.
	want := 30 * 0.26458333 * 2.0
	if math.Abs(m.APLeft-want) > 0.01 || math.Abs(m.APRight-want) > 0.01 {
		t.Errorf("AP = (%v, %v), want %v +- 0.01", m.APLeft, m.APRight, want)
	}
	if !slices.Contains(m.Warnings, WarnDPOutOfRange) {
		t.Errorf("expected DP out-of-range warning, got %v", m.Warnings)
	}
	if engine.WithinPlausibleRanges(m) {
		t.Error("clamped fixture should be outside plausible ranges")
	}
}

func TestMeasureCorrectionClampLow(t *testing.T) {
	// A narrow frame forces the raw factor below 0.5.
	lm := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 10, Y: 50},
		RightEye:   geometry.Point{X: 70, Y: 50},
		Nose:       geometry.Point{X: 40, Y: 80},
		Confidence: 0.9,
	}
	engine := NewEngine(DefaultCalibration())

	m, err := engine.Measure(lm, 100, 100)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	// 60 px * 0.26458333 * 0.5
	if math.Abs(m.DP-7.9375) > 0.01 {
		t.Errorf("DP = %v, want 7.9375 +- 0.01", m.DP)
	}
}

func TestMeasureCollinearNose(t *testing.T) {
	// Nose exactly on the eye line: both pupillary heights must be zero.
	lm := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 100, Y: 100},
		RightEye:   geometry.Point{X: 200, Y: 120},
		Nose:       geometry.Point{X: 150, Y: 110},
		Confidence: 0.9,
	}
	engine := NewEngine(DefaultCalibration())

	m, err := engine.Measure(lm, 800, 600)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	if math.Abs(m.APLeft) > 1e-9 || math.Abs(m.APRight) > 1e-9 {
		t.Errorf("collinear nose should give zero heights, got (%v, %v)", m.APLeft, m.APRight)
	}
}

func TestMeasureTiltInvariance(t *testing.T) {
	// Heights are measured perpendicular to the eye line, so rotating the
	// whole landmark set must not change them.
	base := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 100, Y: 100},
		RightEye:   geometry.Point{X: 160, Y: 100},
		Nose:       geometry.Point{X: 130, Y: 130},
		Confidence: 0.9,
	}
	center := geometry.Point{X: 130, Y: 115}

	engine := NewEngine(DefaultCalibration())
	ref, err := engine.Measure(base, 640, 480)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	for _, deg := range []float64{-20, -5, 10, 30, 90} {
		rotated := entity.LandmarkSet{
			LeftEye:    geometry.RotatePoint(base.LeftEye, center, deg),
			RightEye:   geometry.RotatePoint(base.RightEye, center, deg),
			Nose:       geometry.RotatePoint(base.Nose, center, deg),
			Confidence: 0.9,
		}

		m, err := engine.Measure(rotated, 640, 480)
		if err != nil {
			t.Fatalf("Measure(%v deg) returned error: %v", deg, err)
		}

		if math.Abs(m.APLeft-ref.APLeft) > 1e-6 || math.Abs(m.APRight-ref.APRight) > 1e-6 {
			t.Errorf("rotation by %v changed heights: (%v, %v) vs (%v, %v)",
				deg, m.APLeft, m.APRight, ref.APLeft, ref.APRight)
		}
		if math.Abs(m.DP-ref.DP) > 1e-6 {
			t.Errorf("rotation by %v changed DP: %v vs %v", deg, m.DP, ref.DP)
		}
	}
}

func TestMeasureAsymmetryWarning(t *testing.T) {
	// Nose shifted toward the right eye: DPN left/right differ by ~2.5 mm
	// while every value stays inside its range.
	lm := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 200, Y: 300},
		RightEye:   geometry.Point{X: 438, Y: 300},
		Nose:       geometry.Point{X: 324.66, Y: 378.66},
		Confidence: 0.9,
	}
	engine := NewEngine(DefaultCalibration())

	m, err := engine.Measure(lm, 1190, 1600)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	if len(m.Warnings) != 1 || m.Warnings[0] != WarnDPNAsymmetry {
		t.Errorf("Warnings = %v, want only %q", m.Warnings, WarnDPNAsymmetry)
	}
	if m.Quality != entity.QualityMedium {
		t.Errorf("Quality = %v, want %v", m.Quality, entity.QualityMedium)
	}
	if !engine.WithinPlausibleRanges(m) {
		t.Error("asymmetric but plausible fixture should pass the range check")
	}
}

func TestMeasureLowConfidenceWarning(t *testing.T) {
	lm, w, h := cleanLandmarks()
	lm.Confidence = 0.5

	m, err := NewEngine(DefaultCalibration()).Measure(lm, w, h)
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}

	if !slices.Contains(m.Warnings, WarnLowConfidence) {
		t.Errorf("expected low-confidence warning, got %v", m.Warnings)
	}
}

func TestMeasureInputErrors(t *testing.T) {
	engine := NewEngine(DefaultCalibration())
	valid, w, h := cleanLandmarks()

	tests := []struct {
		name   string
		mutate func(*entity.LandmarkSet)
		width  int
		height int
	}{
		{
			name:   "NaN coordinate",
			mutate: func(lm *entity.LandmarkSet) { lm.Nose.X = math.NaN() },
			width:  w, height: h,
		},
		{
			name:   "infinite coordinate",
			mutate: func(lm *entity.LandmarkSet) { lm.LeftEye.Y = math.Inf(1) },
			width:  w, height: h,
		},
		{
			name:   "zero width",
			mutate: func(lm *entity.LandmarkSet) {},
			width:  0, height: h,
		},
		{
			name:   "negative height",
			mutate: func(lm *entity.LandmarkSet) {},
			width:  w, height: -10,
		},
		{
			name:   "coincident pupils",
			mutate: func(lm *entity.LandmarkSet) { lm.RightEye = lm.LeftEye },
			width:  w, height: h,
		},
		{
			name:   "confidence above one",
			mutate: func(lm *entity.LandmarkSet) { lm.Confidence = 1.5 },
			width:  w, height: h,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm := valid
			tt.mutate(&lm)

			_, err := engine.Measure(lm, tt.width, tt.height)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsInputError(err) {
				t.Errorf("expected InputError, got %T: %v", err, err)
			}
		})
	}
}
