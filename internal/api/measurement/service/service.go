package measurementService

import (
	"mime/multipart"

	authRepository "github.com/developeragencia/visaomais/internal/api/auth/repository"
	measurementRepository "github.com/developeragencia/visaomais/internal/api/measurement/repository"
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/internal/optics"
	"github.com/developeragencia/visaomais/pkg/gemini"
	"github.com/developeragencia/visaomais/pkg/pigo"
	"github.com/developeragencia/visaomais/pkg/s3"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IMeasurementService interface {
	MeasurePhoto(ctx context.Context, clientID string, userID string, photoFile *multipart.FileHeader) (entity.FacialMeasurement, entity.MeasurementReport, error)
	MeasureImageData(ctx context.Context, clientID string, userID string, data []byte) (entity.FacialMeasurement, entity.MeasurementReport, error)
	CheckQuality(ctx context.Context, imageData []byte) (entity.QualityReport, error)
	GetMeasurementByID(ctx context.Context, id string) (entity.FacialMeasurement, error)
	GetMeasurementsByClient(ctx context.Context, clientID string) ([]entity.FacialMeasurement, error)
	GetLatestAccepted(ctx context.Context, clientID string) (entity.FacialMeasurement, error)
}

type measurementService struct {
	log                   *logrus.Logger
	measurementRepository measurementRepository.Repository
	authRepository        authRepository.Repository
	detector              pigo.ItfPigo
	vision                gemini.IGemini
	pipeline              *optics.Pipeline
	scorer                *optics.Scorer
	s3                    s3.ItfS3
	utils                 utils.IUtils
}

// New wires the measurement pipeline. The vision client may be nil; the
// service then runs with the local detector only.
func New(
	log *logrus.Logger,
	measurementRepo measurementRepository.Repository,
	authRepo authRepository.Repository,
	detector pigo.ItfPigo,
	vision gemini.IGemini,
	pipeline *optics.Pipeline,
	scorer *optics.Scorer,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IMeasurementService {
	return &measurementService{
		log:                   log,
		measurementRepository: measurementRepo,
		authRepository:        authRepo,
		detector:              detector,
		vision:                vision,
		pipeline:              pipeline,
		scorer:                scorer,
		s3:                    s3Client,
		utils:                 utils,
	}
}
