package appointmentRepository

const (
	queryCreateAppointment = `
		INSERT INTO appointments (
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		) VALUES (
			:id,
			:franchise_id,
			:client_id,
			:attendant_id,
			:scheduled_at,
			:status,
			:notes,
			:reminder_sent,
			:created_at,
			:updated_at
		)
	`

	queryGetAppointmentByID = `
		SELECT
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		FROM appointments
		WHERE id = :id
	`

	queryGetAppointmentsByFranchise = `
		SELECT
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		FROM appointments
		WHERE franchise_id = :franchise_id
		ORDER BY scheduled_at DESC
	`

	queryGetAppointmentsByClient = `
		SELECT
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		FROM appointments
		WHERE client_id = :client_id
		ORDER BY scheduled_at DESC
	`

	queryGetAppointmentsByFranchiseAndDay = `
		SELECT
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		FROM appointments
		WHERE franchise_id = :franchise_id
		  AND scheduled_at >= :day_start
		  AND scheduled_at < :day_end
		ORDER BY scheduled_at
	`

	queryCountConflictingAppointments = `
		SELECT COUNT(*)
		FROM appointments
		WHERE franchise_id = :franchise_id
		  AND scheduled_at = :scheduled_at
		  AND status IN ('scheduled', 'confirmed')
	`

	queryGetUpcomingUnreminded = `
		SELECT
			id,
			franchise_id,
			client_id,
			attendant_id,
			scheduled_at,
			status,
			notes,
			reminder_sent,
			created_at,
			updated_at
		FROM appointments
		WHERE reminder_sent = FALSE
		  AND status IN ('scheduled', 'confirmed')
		  AND scheduled_at BETWEEN :from AND :until
		ORDER BY scheduled_at
	`

	queryUpdateAppointmentStatus = `
		UPDATE appointments
		SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryMarkReminderSent = `
		UPDATE appointments
		SET
			reminder_sent = TRUE,
			updated_at = :updated_at
		WHERE id = :id
	`
)
