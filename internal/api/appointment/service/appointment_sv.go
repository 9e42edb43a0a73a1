package appointmentService

import (
	"fmt"
	"time"

	"github.com/developeragencia/visaomais/internal/api/appointment"
	"github.com/developeragencia/visaomais/internal/api/franchise"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	reminderWindow   = 24 * time.Hour
	reminderInterval = 15 * time.Minute
)

func (s *appointmentService) CreateAppointment(ctx context.Context, req appointment.CreateAppointmentRequest) (entity.Appointment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Appointment{}, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"scheduled_at": req.ScheduledAt,
		}).Warn("Invalid scheduled date format")
		return entity.Appointment{}, appointment.ErrInvalidScheduledAt
	}

	if scheduledAt.Before(time.Now()) {
		return entity.Appointment{}, appointment.ErrScheduledInPast
	}

	franchiseRepo, err := s.franchiseRepository.NewClient(false)
	if err != nil {
		return entity.Appointment{}, err
	}

	f, err := franchiseRepo.Franchises.GetFranchiseByID(ctx, req.FranchiseID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"franchise_id": req.FranchiseID,
			"error":        err.Error(),
		}).Warn("Failed to get franchise for appointment")
		return entity.Appointment{}, err
	}

	if f.Status != entity.FranchiseStatusActive {
		return entity.Appointment{}, franchise.ErrFranchiseNotActive
	}

	conflicts, err := repo.Appointments.CountConflictingAppointments(ctx, req.FranchiseID, scheduledAt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check slot availability")
		return entity.Appointment{}, err
	}
	if conflicts > 0 {
		return entity.Appointment{}, appointment.ErrSlotAlreadyTaken
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Appointment{}, err
	}

	a := entity.Appointment{
		ID:          ULID,
		FranchiseID: req.FranchiseID,
		ClientID:    req.ClientID,
		AttendantID: req.AttendantID,
		ScheduledAt: scheduledAt,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Appointments.CreateAppointment(ctx, a); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create appointment")
		return entity.Appointment{}, appointment.ErrCreateAppointment
	}

	s.notifyClient(ctx, a, fmt.Sprintf(
		"Olá! Seu agendamento na %s foi criado para %s. Responda para confirmar.",
		f.Name, scheduledAt.Format("02/01/2006 15:04")))

	return a, nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, id string) (entity.Appointment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Appointment{}, err
	}

	return repo.Appointments.GetAppointmentByID(ctx, id)
}

func (s *appointmentService) GetAppointmentsByFranchise(ctx context.Context, franchiseID string) ([]entity.Appointment, error) {
	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Appointments.GetAppointmentsByFranchise(ctx, franchiseID)
}

func (s *appointmentService) GetAppointmentsByFranchiseAndDay(ctx context.Context, franchiseID string, day time.Time) ([]entity.Appointment, error) {
	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Appointments.GetAppointmentsByFranchiseAndDay(ctx, franchiseID, day)
}

func (s *appointmentService) GetAppointmentsByClient(ctx context.Context, clientID string) ([]entity.Appointment, error) {
	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Appointments.GetAppointmentsByClient(ctx, clientID)
}

func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	a, err := repo.Appointments.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}

	if !entity.CanTransitionAppointment(a.Status, status) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       a.Status,
			"to":         status,
		}).Warn("Invalid appointment status transition")
		return appointment.ErrInvalidStatusChange
	}

	if err := repo.Appointments.UpdateAppointmentStatus(ctx, id, status); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update appointment status")
		return err
	}

	return nil
}

// SendDueReminders sends a WhatsApp reminder for every unreminded appointment
// happening within the next reminderWindow.
func (s *appointmentService) SendDueReminders(ctx context.Context) error {
	repo, err := s.appointmentRepository.NewClient(false)
	if err != nil {
		return err
	}

	now := time.Now()
	due, err := repo.Appointments.GetUpcomingUnreminded(ctx, now, now.Add(reminderWindow))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to fetch due reminders")
		return err
	}

	for _, a := range due {
		msg := fmt.Sprintf("Lembrete: você tem um agendamento amanhã às %s. Até lá!",
			a.ScheduledAt.Format("15:04"))
		if !s.notifyClient(ctx, a, msg) {
			continue
		}

		if err := repo.Appointments.MarkReminderSent(ctx, a.ID); err != nil {
			s.log.WithFields(logrus.Fields{
				"appointment_id": a.ID,
				"error":          err.Error(),
			}).Error("Failed to mark reminder as sent")
		}
	}

	return nil
}

// RunReminderWorker blocks until ctx is cancelled, firing SendDueReminders on
// a fixed interval. Meant to run in its own goroutine.
func (s *appointmentService) RunReminderWorker(ctx context.Context) {
	ticker := time.NewTicker(reminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SendDueReminders(ctx); err != nil {
				s.log.WithFields(logrus.Fields{
					"error": err.Error(),
				}).Error("Reminder pass failed")
			}
		}
	}
}

func (s *appointmentService) notifyClient(ctx context.Context, a entity.Appointment, message string) bool {
	if s.whatsappSender == nil || !s.whatsappSender.IsConnected() {
		return false
	}

	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		return false
	}

	client, err := authRepo.Users.GetByID(ctx, a.ClientID)
	if err != nil || client.PhoneNumber == "" {
		return false
	}

	if err := s.whatsappSender.SendMessage(ctx, client.PhoneNumber, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"appointment_id": a.ID,
			"error":          err.Error(),
		}).Error("Failed to send WhatsApp message")
		return false
	}

	return true
}
