package appointmentRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/developeragencia/visaomais/internal/api/appointment"
	"github.com/developeragencia/visaomais/internal/entity"
	contextPkg "github.com/developeragencia/visaomais/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AppointmentDB struct {
	ID           sql.NullString `db:"id"`
	FranchiseID  sql.NullString `db:"franchise_id"`
	ClientID     sql.NullString `db:"client_id"`
	AttendantID  sql.NullString `db:"attendant_id"`
	ScheduledAt  time.Time      `db:"scheduled_at"`
	Status       sql.NullString `db:"status"`
	Notes        sql.NullString `db:"notes"`
	ReminderSent sql.NullBool   `db:"reminder_sent"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *appointmentRepository) CreateAppointment(c context.Context, a entity.Appointment) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            a.ID,
		"franchise_id":  a.FranchiseID,
		"client_id":     a.ClientID,
		"attendant_id":  newNullString(a.AttendantID),
		"scheduled_at":  a.ScheduledAt,
		"status":        a.Status,
		"notes":         a.Notes,
		"reminder_sent": false,
		"created_at":    time.Now(),
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAppointment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAppointment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating appointment")
		return err
	}

	return nil
}

func (r *appointmentRepository) GetAppointmentByID(c context.Context, id string) (entity.Appointment, error) {
	requestID := contextPkg.GetRequestID(c)
	var a AppointmentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetAppointmentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentByID named query preparation err")
		return entity.Appointment{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Appointment{}, appointment.ErrAppointmentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAppointmentByID execution err")
		return entity.Appointment{}, err
	}

	return r.makeAppointment(a), nil
}

func (r *appointmentRepository) GetAppointmentsByFranchise(c context.Context, franchiseID string) ([]entity.Appointment, error) {
	return r.selectAppointments(c, queryGetAppointmentsByFranchise, map[string]interface{}{
		"franchise_id": franchiseID,
	}, "GetAppointmentsByFranchise")
}

func (r *appointmentRepository) GetAppointmentsByFranchiseAndDay(c context.Context, franchiseID string, day time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.selectAppointments(c, queryGetAppointmentsByFranchiseAndDay, map[string]interface{}{
		"franchise_id": franchiseID,
		"day_start":    dayStart,
		"day_end":      dayStart.AddDate(0, 0, 1),
	}, "GetAppointmentsByFranchiseAndDay")
}

func (r *appointmentRepository) GetAppointmentsByClient(c context.Context, clientID string) ([]entity.Appointment, error) {
	return r.selectAppointments(c, queryGetAppointmentsByClient, map[string]interface{}{
		"client_id": clientID,
	}, "GetAppointmentsByClient")
}

func (r *appointmentRepository) CountConflictingAppointments(c context.Context, franchiseID string, scheduledAt time.Time) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"franchise_id": franchiseID,
		"scheduled_at": scheduledAt,
	}

	query, args, err := sqlx.Named(queryCountConflictingAppointments, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConflictingAppointments named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountConflictingAppointments execution err")
		return 0, err
	}

	return count, nil
}

func (r *appointmentRepository) GetUpcomingUnreminded(c context.Context, from, until time.Time) ([]entity.Appointment, error) {
	return r.selectAppointments(c, queryGetUpcomingUnreminded, map[string]interface{}{
		"from":  from,
		"until": until,
	}, "GetUpcomingUnreminded")
}

func (r *appointmentRepository) UpdateAppointmentStatus(c context.Context, id string, status string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAppointmentStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAppointmentStatus named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAppointmentStatus execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return appointment.ErrAppointmentNotFound
	}

	return nil
}

func (r *appointmentRepository) MarkReminderSent(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryMarkReminderSent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkReminderSent named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkReminderSent execution err")
		return err
	}

	return nil
}

func (r *appointmentRepository) selectAppointments(c context.Context, baseQuery string, argsKV map[string]interface{}, op string) ([]entity.Appointment, error) {
	requestID := contextPkg.GetRequestID(c)
	var appointments []AppointmentDB

	query, args, err := sqlx.Named(baseQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &appointments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  op,
		}).Error("execution err")
		return nil, err
	}

	result := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, r.makeAppointment(a))
	}

	return result, nil
}

func (r *appointmentRepository) makeAppointment(a AppointmentDB) entity.Appointment {
	return entity.Appointment{
		ID:           a.ID.String,
		FranchiseID:  a.FranchiseID.String,
		ClientID:     a.ClientID.String,
		AttendantID:  a.AttendantID.String,
		ScheduledAt:  a.ScheduledAt,
		Status:       a.Status.String,
		Notes:        a.Notes.String,
		ReminderSent: a.ReminderSent.Bool,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func newNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
