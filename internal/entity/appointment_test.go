package entity

import "testing"

func TestCanTransitionAppointment(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"scheduled to confirmed", AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to no_show", AppointmentStatusScheduled, AppointmentStatusNoShow, true},
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to no_show", AppointmentStatusConfirmed, AppointmentStatusNoShow, true},
		{"confirmed to scheduled", AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"no_show is terminal", AppointmentStatusNoShow, AppointmentStatusScheduled, false},
		{"unknown status", "unknown", AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionAppointment(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionAppointment(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
