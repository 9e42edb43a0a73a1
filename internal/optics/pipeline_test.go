package optics

import (
	"testing"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

func newTestPipeline() *Pipeline {
	return NewPipeline(
		NewEngine(DefaultCalibration()),
		NewScorer(DefaultQualityThresholds(), GradeByCount),
	)
}

func TestProcessAccepted(t *testing.T) {
	lm, w, h := cleanLandmarks()
	p := newTestPipeline()

	report, err := p.Process(checkerBuffer(w, h), w, h, lm)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if !report.Accepted {
		t.Errorf("expected accepted report, got reason %q", report.Reason)
	}
	if report.Reason != "" {
		t.Errorf("Reason = %q, want empty", report.Reason)
	}
	if report.Quality.Quality != entity.QualityHigh {
		t.Errorf("quality grade = %v, want %v", report.Quality.Quality, entity.QualityHigh)
	}
}

func TestProcessRejectsLowQuality(t *testing.T) {
	// Tilted head in a tiny, dark, flat frame: every metric fails and the
	// count policy grades low.
	center := geometry.Point{X: 160, Y: 120}
	lm := entity.LandmarkSet{
		LeftEye:    geometry.RotatePoint(geometry.Point{X: 100, Y: 120}, center, 10),
		RightEye:   geometry.RotatePoint(geometry.Point{X: 220, Y: 120}, center, 10),
		Nose:       geometry.RotatePoint(geometry.Point{X: 160, Y: 160}, center, 10),
		Confidence: 0.9,
	}
	p := newTestPipeline()

	report, err := p.Process(flatBuffer(320, 240, 5), 320, 240, lm)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if report.Accepted {
		t.Error("low-quality image must be rejected")
	}
	if report.Reason != ReasonLowQuality {
		t.Errorf("Reason = %q, want %q", report.Reason, ReasonLowQuality)
	}
}

func TestProcessRejectsImplausibleGeometry(t *testing.T) {
	// Small face in frame: correction clamps and every value lands far
	// below its anatomical range even though the image itself is fine.
	lm := entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 300, Y: 200},
		RightEye:   geometry.Point{X: 360, Y: 200},
		Nose:       geometry.Point{X: 330, Y: 230},
		Confidence: 0.9,
	}
	p := newTestPipeline()

	report, err := p.Process(checkerBuffer(640, 480), 640, 480, lm)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if report.Accepted {
		t.Error("implausible measurement must be rejected")
	}
	if report.Reason != ReasonImplausible {
		t.Errorf("Reason = %q, want %q", report.Reason, ReasonImplausible)
	}
	// The measurement itself is still returned for diagnostics.
	if report.Measurement.DP == 0 {
		t.Error("rejected report should still carry the computed measurement")
	}
}

func TestProcessInputErrorPropagates(t *testing.T) {
	lm, w, h := cleanLandmarks()
	lm.Confidence = -1
	p := newTestPipeline()

	_, err := p.Process(checkerBuffer(w, h), w, h, lm)
	if err == nil {
		t.Fatal("expected error for invalid confidence")
	}
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %T: %v", err, err)
	}
}
