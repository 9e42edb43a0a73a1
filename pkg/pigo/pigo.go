// Package pigo wraps the esimov/pigo cascade classifiers as the local
// landmark source for the measurement pipeline: face localization, pupil
// detection for both eyes and the nose landmark point. The detector is an
// explicitly constructed instance holding its unpacked cascades; there is no
// lazily initialized global state.
package pigo

import (
	"errors"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

var (
	ErrNoFaceDetected = errors.New("no face detected in image")
	ErrLandmarkFailed = errors.New("failed to localize facial landmarks")
)

type ItfPigo interface {
	DetectLandmarks(img image.Image) (entity.LandmarkSet, error)
}

type detector struct {
	face   *pigo.Pigo
	puploc *pigo.PuplocCascade
	nose   *pigo.PuplocCascade

	minFaceSize  int
	maxFaceSize  int
	minQuality   float32
	eyePerturbs  int
	nosePerturbs int
}

// New loads the facefinder, puploc and nose landmark cascades from the
// paths configured in the environment.
func New() (ItfPigo, error) {
	faceBytes, err := os.ReadFile(envOrDefault("PIGO_FACEFINDER_PATH", "./cascades/facefinder"))
	if err != nil {
		return nil, err
	}

	faceClassifier, err := pigo.NewPigo().Unpack(faceBytes)
	if err != nil {
		return nil, err
	}

	puplocBytes, err := os.ReadFile(envOrDefault("PIGO_PUPLOC_PATH", "./cascades/puploc"))
	if err != nil {
		return nil, err
	}

	puplocClassifier, err := pigo.NewPuplocCascade().UnpackCascade(puplocBytes)
	if err != nil {
		return nil, err
	}

	noseBytes, err := os.ReadFile(envOrDefault("PIGO_LP_NOSE_PATH", "./cascades/lp93"))
	if err != nil {
		return nil, err
	}

	noseClassifier, err := pigo.NewPuplocCascade().UnpackCascade(noseBytes)
	if err != nil {
		return nil, err
	}

	return &detector{
		face:         faceClassifier,
		puploc:       puplocClassifier,
		nose:         noseClassifier,
		minFaceSize:  100,
		maxFaceSize:  2000,
		minQuality:   50.0,
		eyePerturbs:  50,
		nosePerturbs: 63,
	}, nil
}

// DetectLandmarks locates the most confident face in the image and returns
// its pupil centers and nose point in pixel coordinates.
func (d *detector) DetectLandmarks(img image.Image) (entity.LandmarkSet, error) {
	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Max.X, src.Bounds().Max.Y

	imgParams := pigo.ImageParams{
		Pixels: pixels,
		Rows:   rows,
		Cols:   cols,
		Dim:    cols,
	}
	cParams := pigo.CascadeParams{
		MinSize:     d.minFaceSize,
		MaxSize:     d.maxFaceSize,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: imgParams,
	}

	dets := d.face.RunCascade(cParams, 0.0)
	dets = d.face.ClusterDetections(dets, 0.2)

	var best pigo.Detection
	found := false
	for _, det := range dets {
		if det.Q >= d.minQuality && (!found || det.Q > best.Q) {
			best = det
			found = true
		}
	}
	if !found {
		return entity.LandmarkSet{}, ErrNoFaceDetected
	}

	// Pupil search regions relative to the detected face, offsets per the
	// pigo reference detector.
	leftSeed := pigo.Puploc{
		Row:      best.Row - int(0.075*float32(best.Scale)),
		Col:      best.Col - int(0.175*float32(best.Scale)),
		Scale:    float32(best.Scale) * 0.25,
		Perturbs: d.eyePerturbs,
	}
	leftEye := d.puploc.RunDetector(leftSeed, imgParams, 0.0, false)

	rightSeed := pigo.Puploc{
		Row:      best.Row - int(0.075*float32(best.Scale)),
		Col:      best.Col + int(0.185*float32(best.Scale)),
		Scale:    float32(best.Scale) * 0.25,
		Perturbs: d.eyePerturbs,
	}
	rightEye := d.puploc.RunDetector(rightSeed, imgParams, 0.0, false)

	if leftEye.Row <= 0 || leftEye.Col <= 0 || rightEye.Row <= 0 || rightEye.Col <= 0 {
		return entity.LandmarkSet{}, ErrLandmarkFailed
	}

	nose := d.nose.GetLandmarkPoint(leftEye, rightEye, imgParams, d.nosePerturbs, false)
	if nose.Row <= 0 || nose.Col <= 0 {
		return entity.LandmarkSet{}, ErrLandmarkFailed
	}

	return entity.LandmarkSet{
		LeftEye:    geometry.Point{X: float64(leftEye.Col), Y: float64(leftEye.Row)},
		RightEye:   geometry.Point{X: float64(rightEye.Col), Y: float64(rightEye.Row)},
		Nose:       geometry.Point{X: float64(nose.Col), Y: float64(nose.Row)},
		Confidence: normalizeQuality(best.Q),
	}, nil
}

// normalizeQuality maps the cascade quality score onto the [0,1] confidence
// scale the pipeline expects.
func normalizeQuality(q float32) float64 {
	conf := float64(q) / 100.0
	if conf > 1 {
		conf = 1
	}
	if conf < 0 {
		conf = 0
	}
	return conf
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
