package entity

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no_show"
)

// Allowed status transitions. Completed and cancelled are terminal.
func CanTransitionAppointment(from, to string) bool {
	switch from {
	case AppointmentStatusScheduled:
		return to == AppointmentStatusConfirmed || to == AppointmentStatusCancelled || to == AppointmentStatusNoShow
	case AppointmentStatusConfirmed:
		return to == AppointmentStatusCompleted || to == AppointmentStatusCancelled || to == AppointmentStatusNoShow
	}
	return false
}

type Appointment struct {
	ID           string    `db:"id"`
	FranchiseID  string    `db:"franchise_id"`
	ClientID     string    `db:"client_id"`
	AttendantID  string    `db:"attendant_id"`
	ScheduledAt  time.Time `db:"scheduled_at"`
	Status       string    `db:"status"`
	Notes        string    `db:"notes"`
	ReminderSent bool      `db:"reminder_sent"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
