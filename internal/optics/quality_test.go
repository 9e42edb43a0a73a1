package optics

import (
	"strings"
	"testing"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

// flatBuffer fills every pixel with the same RGB value.
func flatBuffer(width, height int, value byte) []byte {
	buf := make([]byte, width*height*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i] = value
		buf[i+1] = value
		buf[i+2] = value
		buf[i+3] = 255
	}
	return buf
}

// checkerBuffer alternates black and white pixels: mid brightness and very
// high edge energy.
func checkerBuffer(width, height int) []byte {
	buf := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v byte
			if (x+y)%2 == 0 {
				v = 255
			}
			i := (y*width + x) * 4
			buf[i] = v
			buf[i+1] = v
			buf[i+2] = v
			buf[i+3] = 255
		}
	}
	return buf
}

func TestScoreAllMetricsGood(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	report := scorer.Score(checkerBuffer(640, 480), 640, 480, nil)

	if !report.Resolution.IsGood || !report.Brightness.IsGood || !report.Sharpness.IsGood {
		t.Errorf("expected all baseline metrics good, got %+v", report)
	}
	if !report.FaceAngle.IsGood {
		t.Error("face angle should default to good without landmarks")
	}
	if report.Quality != entity.QualityHigh {
		t.Errorf("Quality = %v, want %v", report.Quality, entity.QualityHigh)
	}
	if report.Message != MsgImageOK {
		t.Errorf("Message = %q, want %q", report.Message, MsgImageOK)
	}
	if !report.IsGood {
		t.Error("IsGood should be true for a high grade")
	}
}

func TestScoreLowResolution(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	report := scorer.Score(checkerBuffer(320, 240), 320, 240, nil)

	if report.Resolution.IsGood {
		t.Error("320x240 should fail the resolution floor")
	}
	if !strings.Contains(report.Message, MsgLowResolution) {
		t.Errorf("Message = %q, should mention %q", report.Message, MsgLowResolution)
	}
}

func TestScoreDarkImage(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	report := scorer.Score(flatBuffer(640, 480, 20), 640, 480, nil)

	if report.Brightness.IsGood {
		t.Errorf("brightness %v should fail the band", report.Brightness.Value)
	}
	if !strings.Contains(report.Message, MsgBadLighting) {
		t.Errorf("Message = %q, should mention %q", report.Message, MsgBadLighting)
	}
}

func TestScoreBlurryImage(t *testing.T) {
	// A perfectly flat image has zero edge energy.
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	report := scorer.Score(flatBuffer(640, 480, 128), 640, 480, nil)

	if report.Sharpness.IsGood {
		t.Errorf("sharpness %v should fail the floor", report.Sharpness.Value)
	}
	if !strings.Contains(report.Message, MsgBlurry) {
		t.Errorf("Message = %q, should mention %q", report.Message, MsgBlurry)
	}
}

func TestScoreTiltedFace(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	// Eye line tilted by 10 degrees: outside the tight band.
	lm := &entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 100, Y: 100},
		RightEye:   geometry.RotatePoint(geometry.Point{X: 160, Y: 100}, geometry.Point{X: 100, Y: 100}, 10),
		Nose:       geometry.Point{X: 130, Y: 135},
		Confidence: 0.9,
	}

	report := scorer.Score(checkerBuffer(640, 480), 640, 480, lm)

	if report.FaceAngle.IsGood {
		t.Errorf("face angle %v should fail the tight band", report.FaceAngle.Value)
	}
	if !strings.Contains(report.Message, MsgTiltedFace) {
		t.Errorf("Message = %q, should mention %q", report.Message, MsgTiltedFace)
	}
	// Three baseline metrics still pass, so the count policy grades high.
	if report.Quality != entity.QualityHigh {
		t.Errorf("Quality = %v, want %v", report.Quality, entity.QualityHigh)
	}
}

func TestScoreCountPolicyGrades(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	tests := []struct {
		name     string
		pixels   []byte
		width    int
		height   int
		expected entity.MeasurementQuality
	}{
		{
			// Resolution bad, brightness bad, sharpness bad: zero good.
			name:     "all failing grades low",
			pixels:   flatBuffer(160, 120, 10),
			width:    160,
			height:   120,
			expected: entity.QualityLow,
		},
		{
			// Only brightness passes.
			name:     "one good grades medium",
			pixels:   flatBuffer(160, 120, 128),
			width:    160,
			height:   120,
			expected: entity.QualityMedium,
		},
		{
			// Brightness and sharpness pass, resolution fails.
			name:     "two good grades high",
			pixels:   checkerBuffer(320, 240),
			width:    320,
			height:   240,
			expected: entity.QualityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scorer.Score(tt.pixels, tt.width, tt.height, nil)
			if report.Quality != tt.expected {
				t.Errorf("Quality = %v, want %v", report.Quality, tt.expected)
			}
			if report.IsGood != (tt.expected != entity.QualityLow) {
				t.Errorf("IsGood = %v inconsistent with grade %v", report.IsGood, report.Quality)
			}
		})
	}
}

func TestScorePointsPolicyGrades(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByPoints)

	tests := []struct {
		name     string
		pixels   []byte
		width    int
		height   int
		expected entity.MeasurementQuality
	}{
		{
			// 2 (resolution) + 2 (brightness) + 2 (sharpness) + 2 (no
			// landmarks) = 8 points.
			name:     "all strong grades high",
			pixels:   checkerBuffer(640, 480),
			width:    640,
			height:   480,
			expected: entity.QualityHigh,
		},
		{
			// 2 + 2 + 0 (flat image) + 2 = 6 points.
			name:     "flat image grades medium",
			pixels:   flatBuffer(640, 480, 128),
			width:    640,
			height:   480,
			expected: entity.QualityMedium,
		},
		{
			// 0 (below borderline pixels) + 0 (too dark) + 0 + 2 = 2.
			name:     "tiny dark image grades low",
			pixels:   flatBuffer(160, 120, 10),
			width:    160,
			height:   120,
			expected: entity.QualityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scorer.Score(tt.pixels, tt.width, tt.height, nil)
			if report.Quality != tt.expected {
				t.Errorf("Quality = %v, want %v", report.Quality, tt.expected)
			}
		})
	}
}

func TestScorePointsPolicyLooseAngleBand(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByPoints)

	// 10 degrees: outside the 5 degree tight band, inside the 15 degree
	// secondary band, worth one point instead of two.
	lm := &entity.LandmarkSet{
		LeftEye:    geometry.Point{X: 100, Y: 100},
		RightEye:   geometry.RotatePoint(geometry.Point{X: 160, Y: 100}, geometry.Point{X: 100, Y: 100}, 10),
		Nose:       geometry.Point{X: 130, Y: 135},
		Confidence: 0.9,
	}

	// 2 + 2 + 2 + 1 = 7: still high.
	report := scorer.Score(checkerBuffer(640, 480), 640, 480, lm)
	if report.Quality != entity.QualityHigh {
		t.Errorf("Quality = %v, want %v", report.Quality, entity.QualityHigh)
	}

	// Flat image drops sharpness to zero: 2 + 2 + 0 + 1 = 5, medium.
	report = scorer.Score(flatBuffer(640, 480, 128), 640, 480, lm)
	if report.Quality != entity.QualityMedium {
		t.Errorf("Quality = %v, want %v", report.Quality, entity.QualityMedium)
	}
}

func TestScoreMalformedBuffer(t *testing.T) {
	scorer := NewScorer(DefaultQualityThresholds(), GradeByCount)

	tests := []struct {
		name   string
		pixels []byte
		width  int
		height int
	}{
		{"short buffer", make([]byte, 100), 640, 480},
		{"nil buffer", nil, 640, 480},
		{"zero dimensions", make([]byte, 0), 0, 0},
		{"negative width", make([]byte, 400), -10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scorer.Score(tt.pixels, tt.width, tt.height, nil)
			if report.IsGood {
				t.Error("unprocessable input must not grade good")
			}
			if report.Quality != entity.QualityLow {
				t.Errorf("Quality = %v, want %v", report.Quality, entity.QualityLow)
			}
			if report.Message != MsgUnprocessable {
				t.Errorf("Message = %q, want %q", report.Message, MsgUnprocessable)
			}
		})
	}
}
