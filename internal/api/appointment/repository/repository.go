package appointmentRepository

import (
	"time"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Appointments: &appointmentRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Appointments interface {
		CreateAppointment(c context.Context, appointment entity.Appointment) error
		GetAppointmentByID(c context.Context, id string) (entity.Appointment, error)
		GetAppointmentsByFranchise(c context.Context, franchiseID string) ([]entity.Appointment, error)
		GetAppointmentsByFranchiseAndDay(c context.Context, franchiseID string, day time.Time) ([]entity.Appointment, error)
		GetAppointmentsByClient(c context.Context, clientID string) ([]entity.Appointment, error)
		CountConflictingAppointments(c context.Context, franchiseID string, scheduledAt time.Time) (int, error)
		GetUpcomingUnreminded(c context.Context, from, until time.Time) ([]entity.Appointment, error)
		UpdateAppointmentStatus(c context.Context, id string, status string) error
		MarkReminderSent(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type appointmentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
