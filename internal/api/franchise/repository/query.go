package franchiseRepository

const (
	queryCreateFranchise = `
		INSERT INTO franchises (
			id,
			name,
			cnpj,
			email,
			phone,
			address,
			city,
			state,
			status,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:cnpj,
			:email,
			:phone,
			:address,
			:city,
			:state,
			:status,
			:created_at,
			:updated_at
		)
	`

	queryGetFranchiseByID = `
		SELECT
			id,
			name,
			cnpj,
			email,
			phone,
			address,
			city,
			state,
			status,
			created_at,
			updated_at
		FROM franchises
		WHERE id = :id
	`

	queryGetFranchiseByCNPJ = `
		SELECT
			id,
			name,
			cnpj,
			email,
			phone,
			address,
			city,
			state,
			status,
			created_at,
			updated_at
		FROM franchises
		WHERE cnpj = :cnpj
	`

	queryGetFranchises = `
		SELECT
			id,
			name,
			cnpj,
			email,
			phone,
			address,
			city,
			state,
			status,
			created_at,
			updated_at
		FROM franchises
		ORDER BY created_at DESC
	`

	queryGetFranchisesByStatus = `
		SELECT
			id,
			name,
			cnpj,
			email,
			phone,
			address,
			city,
			state,
			status,
			created_at,
			updated_at
		FROM franchises
		WHERE status = :status
		ORDER BY created_at DESC
	`

	queryUpdateFranchise = `
		UPDATE franchises
		SET
			name = :name,
			email = :email,
			phone = :phone,
			address = :address,
			city = :city,
			state = :state,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`
)
