package measurementService

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/developeragencia/visaomais/internal/api/auth"
	"github.com/developeragencia/visaomais/internal/api/measurement"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/developeragencia/visaomais/pkg/pigo"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// maxImageDimension bounds the pixel buffer handed to the analyzers. Larger
// uploads are scaled down before detection.
const maxImageDimension = 1600

func (s *measurementService) MeasurePhoto(ctx context.Context, clientID string, userID string, photoFile *multipart.FileHeader) (entity.FacialMeasurement, entity.MeasurementReport, error) {
	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	client, err := authRepo.Users.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return entity.FacialMeasurement{}, entity.MeasurementReport{}, measurement.ErrClientNotFound
		}
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	if client.Role != entity.RoleClient {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, measurement.ErrClientNotFound
	}

	src, err := photoFile.Open()
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	return s.measure(ctx, clientID, userID, data, func() (string, error) {
		return s.s3.UploadFile(photoFile)
	})
}

// MeasureImageData accepts decoded image bytes directly, for callers sending
// the photo as base64 instead of a multipart form.
func (s *measurementService) MeasureImageData(ctx context.Context, clientID string, userID string, data []byte) (entity.FacialMeasurement, entity.MeasurementReport, error) {
	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	client, err := authRepo.Users.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return entity.FacialMeasurement{}, entity.MeasurementReport{}, measurement.ErrClientNotFound
		}
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	if client.Role != entity.RoleClient {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, measurement.ErrClientNotFound
	}

	return s.measure(ctx, clientID, userID, data, func() (string, error) {
		return s.s3.UploadBytes("measurement.jpg", data)
	})
}

// measure runs the analyzers over the raw bytes, uploads the photo and
// persists the resulting record. Upload is deferred until analysis succeeds
// so rejected images never reach storage.
func (s *measurementService) measure(ctx context.Context, clientID string, userID string, data []byte, upload func() (string, error)) (entity.FacialMeasurement, entity.MeasurementReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	report, source, err := s.analyze(ctx, data)
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	photoURL, err := upload()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload measurement photo")
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	record := entity.FacialMeasurement{
		ID:         ULID,
		ClientID:   clientID,
		UserID:     userID,
		PhotoURL:   photoURL,
		Source:     string(source),
		DP:         report.Measurement.DP,
		DPNLeft:    report.Measurement.DPNLeft,
		DPNRight:   report.Measurement.DPNRight,
		APLeft:     report.Measurement.APLeft,
		APRight:    report.Measurement.APRight,
		Quality:    string(report.Measurement.Quality),
		Confidence: report.Measurement.Confidence,
		Warnings:   strings.Join(report.Measurement.Warnings, ";"),
		Accepted:   report.Accepted,
		CreatedAt:  time.Now(),
	}

	repo, err := s.measurementRepository.NewClient(false)
	if err != nil {
		return entity.FacialMeasurement{}, entity.MeasurementReport{}, err
	}

	if err := repo.Measurements.CreateMeasurement(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store measurement")

		if deleteErr := s.s3.DeleteFile(photoURL); deleteErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      deleteErr.Error(),
			}).Error("Failed to delete photo after measurement store failure")
		}

		return entity.FacialMeasurement{}, entity.MeasurementReport{}, measurement.ErrCreateMeasurement
	}

	return record, report, nil
}

// analyze runs detection and both computation stages over the raw image
// bytes. The local detector is tried first; the vision model only steps in
// when it cannot place the landmarks.
func (s *measurementService) analyze(ctx context.Context, data []byte) (entity.MeasurementReport, entity.LandmarkSource, error) {
	requestID := contextPkg.GetRequestID(ctx)

	resized, err := s.utils.ResizeImage(data, maxImageDimension)
	if err != nil {
		return entity.MeasurementReport{}, "", measurement.ErrInvalidImage
	}

	img, err := s.utils.DecodeImage(resized)
	if err != nil {
		return entity.MeasurementReport{}, "", measurement.ErrInvalidImage
	}

	source := entity.SourceLocalDetector
	lm, err := s.detector.DetectLandmarks(img)
	if err != nil {
		if !errors.Is(err, pigo.ErrNoFaceDetected) && !errors.Is(err, pigo.ErrLandmarkFailed) {
			return entity.MeasurementReport{}, "", err
		}

		if s.vision == nil {
			if errors.Is(err, pigo.ErrNoFaceDetected) {
				return entity.MeasurementReport{}, "", measurement.ErrNoFaceDetected
			}
			return entity.MeasurementReport{}, "", measurement.ErrLandmarkDetection
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Local detector failed, falling back to vision model")

		source = entity.SourceVisionModel
		lm, err = s.vision.EstimateLandmarks(ctx, base64.StdEncoding.EncodeToString(resized))
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Vision model landmark estimation failed")
			return entity.MeasurementReport{}, "", measurement.ErrLandmarkDetection
		}
	}

	pixels, width, height := s.utils.ImageToRGBA(img)

	report, err := s.pipeline.Process(pixels, width, height, lm)
	if err != nil {
		return entity.MeasurementReport{}, "", err
	}

	return report, source, nil
}

// CheckQuality scores a raw frame without measuring or persisting anything.
// Landmarks are optional here; without them the face angle metric is skipped.
func (s *measurementService) CheckQuality(ctx context.Context, imageData []byte) (entity.QualityReport, error) {
	resized, err := s.utils.ResizeImage(imageData, maxImageDimension)
	if err != nil {
		return entity.QualityReport{}, measurement.ErrInvalidImage
	}

	img, err := s.utils.DecodeImage(resized)
	if err != nil {
		return entity.QualityReport{}, measurement.ErrInvalidImage
	}

	var landmarks *entity.LandmarkSet
	if lm, err := s.detector.DetectLandmarks(img); err == nil {
		landmarks = &lm
	}

	pixels, width, height := s.utils.ImageToRGBA(img)

	return s.scorer.Score(pixels, width, height, landmarks), nil
}

func (s *measurementService) GetMeasurementByID(ctx context.Context, id string) (entity.FacialMeasurement, error) {
	repo, err := s.measurementRepository.NewClient(false)
	if err != nil {
		return entity.FacialMeasurement{}, err
	}

	return repo.Measurements.GetMeasurementByID(ctx, id)
}

func (s *measurementService) GetMeasurementsByClient(ctx context.Context, clientID string) ([]entity.FacialMeasurement, error) {
	repo, err := s.measurementRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Measurements.GetMeasurementsByClient(ctx, clientID)
}

func (s *measurementService) GetLatestAccepted(ctx context.Context, clientID string) (entity.FacialMeasurement, error) {
	repo, err := s.measurementRepository.NewClient(false)
	if err != nil {
		return entity.FacialMeasurement{}, err
	}

	return repo.Measurements.GetLatestAcceptedByClient(ctx, clientID)
}
