package optics

import (
	"math"
	"strings"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

// GradingStrategy names one of the two overall-grade policies. Both exist
// because different callers expect different scoring: the basic validator
// counts passing metrics, the advanced analyzer sums weighted points.
type GradingStrategy string

const (
	GradeByCount  GradingStrategy = "count"
	GradeByPoints GradingStrategy = "points"
)

// Failing-aspect fragments and the affirmative message.
const (
	MsgLowResolution = "resolução baixa"
	MsgBadLighting   = "iluminação inadequada"
	MsgBlurry        = "imagem desfocada"
	MsgTiltedFace    = "rosto inclinado"
	MsgImageOK       = "imagem adequada para medição"
	MsgUnprocessable = "não foi possível processar a imagem"
)

// Scorer assesses whether a photo is usable for measurement from pixel
// statistics alone. The face-angle metric uses landmarks when provided and
// defaults to good otherwise. Scoring is advisory: it degrades to a
// deterministic low report instead of failing.
type Scorer struct {
	th       QualityThresholds
	strategy GradingStrategy
}

func NewScorer(th QualityThresholds, strategy GradingStrategy) *Scorer {
	if strategy != GradeByPoints {
		strategy = GradeByCount
	}
	return &Scorer{th: th, strategy: strategy}
}

// Score analyzes a flat RGBA buffer (width*height*4, row-major, 0-255 per
// channel). A malformed buffer yields the unprocessable low report.
func (s *Scorer) Score(pixels []byte, width, height int, landmarks *entity.LandmarkSet) entity.QualityReport {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return unprocessableReport()
	}

	report := entity.QualityReport{
		Resolution: s.resolutionMetric(width, height),
		Brightness: s.brightnessMetric(pixels, width, height),
		Sharpness:  s.sharpnessMetric(pixels, width, height),
		FaceAngle:  s.faceAngleMetric(landmarks),
	}

	hasAngle := landmarks != nil

	switch s.strategy {
	case GradeByPoints:
		report.Quality = s.gradeByPoints(report, hasAngle)
	default:
		report.Quality = s.gradeByCount(report, hasAngle)
	}

	report.IsGood = report.Quality != entity.QualityLow
	report.Message = s.composeMessage(report)

	return report
}

func (s *Scorer) resolutionMetric(width, height int) entity.QualityMetric {
	pixels := width * height
	return entity.QualityMetric{
		Value:  float64(pixels),
		IsGood: pixels >= s.th.MinWidth*s.th.MinHeight,
	}
}

func (s *Scorer) brightnessMetric(pixels []byte, width, height int) entity.QualityMetric {
	var sum float64
	for i := 0; i < width*height*4; i += 4 {
		r := float64(pixels[i])
		g := float64(pixels[i+1])
		b := float64(pixels[i+2])
		sum += 0.299*r + 0.587*g + 0.114*b
	}

	avg := sum / float64(width*height) / 255

	return entity.QualityMetric{
		Value:  avg,
		IsGood: avg >= s.th.BrightnessMin && avg <= s.th.BrightnessMax,
	}
}

// sharpnessMetric is a finite-difference edge-energy proxy: the mean of
// absolute horizontal plus vertical neighbor differences over the three
// color channels of every interior pixel. Not a calibrated MTF metric.
func (s *Scorer) sharpnessMetric(pixels []byte, width, height int) entity.QualityMetric {
	if width < 2 || height < 2 {
		return entity.QualityMetric{Value: 0, IsGood: false}
	}

	var sum float64
	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			idx := (y*width + x) * 4
			left := (y*width + x - 1) * 4
			up := ((y-1)*width + x) * 4

			for c := 0; c < 3; c++ {
				h := math.Abs(float64(pixels[idx+c]) - float64(pixels[left+c]))
				v := math.Abs(float64(pixels[idx+c]) - float64(pixels[up+c]))
				sum += h + v
			}
		}
	}

	count := float64((width - 1) * (height - 1) * 3)
	avg := sum / count

	return entity.QualityMetric{
		Value:  avg,
		IsGood: avg >= s.th.SharpnessMin,
	}
}

func (s *Scorer) faceAngleMetric(landmarks *entity.LandmarkSet) entity.QualityMetric {
	if landmarks == nil {
		return entity.QualityMetric{Value: 0, IsGood: true}
	}

	deg := geometry.Angle(landmarks.LeftEye, landmarks.RightEye) * 180 / math.Pi

	return entity.QualityMetric{
		Value:  deg,
		IsGood: math.Abs(deg) <= s.th.AngleTightDeg,
	}
}

// gradeByCount is the simple threshold policy: two passing metrics already
// grade high, a single pass grades medium.
func (s *Scorer) gradeByCount(r entity.QualityReport, hasAngle bool) entity.MeasurementQuality {
	metrics := []entity.QualityMetric{r.Resolution, r.Brightness, r.Sharpness}
	if hasAngle {
		metrics = append(metrics, r.FaceAngle)
	}

	good := 0
	for _, m := range metrics {
		if m.IsGood {
			good++
		}
	}

	switch {
	case good >= 2:
		return entity.QualityHigh
	case good == 1:
		return entity.QualityMedium
	default:
		return entity.QualityLow
	}
}

// gradeByPoints is the weighted policy: two points per strong pass, one per
// borderline pass, thresholded at 7 for high and 4 for medium.
func (s *Scorer) gradeByPoints(r entity.QualityReport, hasAngle bool) entity.MeasurementQuality {
	points := 0

	switch {
	case r.Resolution.IsGood:
		points += 2
	case int(r.Resolution.Value) >= s.th.BorderlinePixels:
		points++
	}

	switch {
	case r.Brightness.IsGood:
		points += 2
	case r.Brightness.Value >= s.th.BrightnessBorderlineMin && r.Brightness.Value <= s.th.BrightnessBorderlineMax:
		points++
	}

	switch {
	case r.Sharpness.IsGood:
		points += 2
	case r.Sharpness.Value >= s.th.SharpnessBorderlineMin:
		points++
	}

	switch {
	case !hasAngle, r.FaceAngle.IsGood:
		points += 2
	case math.Abs(r.FaceAngle.Value) <= s.th.AngleLooseDeg:
		points++
	}

	switch {
	case points >= 7:
		return entity.QualityHigh
	case points >= 4:
		return entity.QualityMedium
	default:
		return entity.QualityLow
	}
}

func (s *Scorer) composeMessage(r entity.QualityReport) string {
	var failing []string

	if !r.Resolution.IsGood {
		failing = append(failing, MsgLowResolution)
	}
	if !r.Brightness.IsGood {
		failing = append(failing, MsgBadLighting)
	}
	if !r.Sharpness.IsGood {
		failing = append(failing, MsgBlurry)
	}
	if !r.FaceAngle.IsGood {
		failing = append(failing, MsgTiltedFace)
	}

	if len(failing) == 0 {
		return MsgImageOK
	}
	return strings.Join(failing, ", ")
}

func unprocessableReport() entity.QualityReport {
	return entity.QualityReport{
		IsGood:     false,
		Quality:    entity.QualityLow,
		Message:    MsgUnprocessable,
		Resolution: entity.QualityMetric{},
		Brightness: entity.QualityMetric{},
		Sharpness:  entity.QualityMetric{},
		FaceAngle:  entity.QualityMetric{},
	}
}
