package appointmentService

import (
	"time"

	"github.com/developeragencia/visaomais/internal/api/appointment"
	appointmentRepository "github.com/developeragencia/visaomais/internal/api/appointment/repository"
	authRepository "github.com/developeragencia/visaomais/internal/api/auth/repository"
	franchiseRepository "github.com/developeragencia/visaomais/internal/api/franchise/repository"
	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/utils"
	"github.com/developeragencia/visaomais/pkg/whatsapp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAppointmentService interface {
	CreateAppointment(ctx context.Context, req appointment.CreateAppointmentRequest) (entity.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (entity.Appointment, error)
	GetAppointmentsByFranchise(ctx context.Context, franchiseID string) ([]entity.Appointment, error)
	GetAppointmentsByFranchiseAndDay(ctx context.Context, franchiseID string, day time.Time) ([]entity.Appointment, error)
	GetAppointmentsByClient(ctx context.Context, clientID string) ([]entity.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status string) error
	SendDueReminders(ctx context.Context) error
	RunReminderWorker(ctx context.Context)
}

type appointmentService struct {
	log                   *logrus.Logger
	appointmentRepository appointmentRepository.Repository
	franchiseRepository   franchiseRepository.Repository
	authRepository        authRepository.Repository
	whatsappSender        whatsapp.IWhatsappSender
	utils                 utils.IUtils
}

func NewAppointmentService(
	log *logrus.Logger,
	ar appointmentRepository.Repository,
	fr franchiseRepository.Repository,
	authRepo authRepository.Repository,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) IAppointmentService {
	return &appointmentService{
		log:                   log,
		appointmentRepository: ar,
		franchiseRepository:   fr,
		authRepository:        authRepo,
		whatsappSender:        whatsappSender,
		utils:                 utils,
	}
}
