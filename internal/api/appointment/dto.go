package appointment

import "time"

type CreateAppointmentRequest struct {
	FranchiseID string `json:"franchise_id" validate:"required"`
	ClientID    string `json:"client_id" validate:"required"`
	AttendantID string `json:"attendant_id" validate:"omitempty"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled no_show"`
}

type AppointmentResponse struct {
	ID           string    `json:"id"`
	FranchiseID  string    `json:"franchise_id"`
	ClientID     string    `json:"client_id"`
	AttendantID  string    `json:"attendant_id,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
