package measurementRepository

const (
	queryCreateMeasurement = `
	INSERT INTO facial_measurements (
		id,
		client_id,
		user_id,
		photo_url,
		source,
		dp,
		dpn_left,
		dpn_right,
		ap_left,
		ap_right,
		quality,
		confidence,
		warnings,
		accepted,
		created_at
	)
	VALUES (
		:id,
		:client_id,
		:user_id,
		:photo_url,
		:source,
		:dp,
		:dpn_left,
		:dpn_right,
		:ap_left,
		:ap_right,
		:quality,
		:confidence,
		:warnings,
		:accepted,
		:created_at
	)
	`

	queryGetMeasurementByID = `
	SELECT
		id,
		client_id,
		user_id,
		photo_url,
		source,
		dp,
		dpn_left,
		dpn_right,
		ap_left,
		ap_right,
		quality,
		confidence,
		warnings,
		accepted,
		created_at
	FROM
		facial_measurements
	WHERE
		id = :id
	`

	queryGetMeasurementsByClient = `
	SELECT
		id,
		client_id,
		user_id,
		photo_url,
		source,
		dp,
		dpn_left,
		dpn_right,
		ap_left,
		ap_right,
		quality,
		confidence,
		warnings,
		accepted,
		created_at
	FROM
		facial_measurements
	WHERE
		client_id = :client_id
	ORDER BY
		created_at DESC
	`

	queryGetLatestAcceptedByClient = `
	SELECT
		id,
		client_id,
		user_id,
		photo_url,
		source,
		dp,
		dpn_left,
		dpn_right,
		ap_left,
		ap_right,
		quality,
		confidence,
		warnings,
		accepted,
		created_at
	FROM
		facial_measurements
	WHERE
		client_id = :client_id
		AND accepted = TRUE
	ORDER BY
		created_at DESC
	LIMIT 1
	`
)
