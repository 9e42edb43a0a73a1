package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, password, phone_number, role, franchise_id, is_active, created_at, updated_at)
VALUES (:id, :email, :name, :password, :phone_number, :role, :franchise_id, :is_active, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, email, name, password, phone_number, role, franchise_id,
       profile_photo_url, is_active, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, password, phone_number, role, franchise_id,
       profile_photo_url, is_active, created_at, updated_at
FROM users
    WHERE email = :email`

	queryGetByFranchise = `
SELECT id, email, name, password, phone_number, role, franchise_id,
       profile_photo_url, is_active, created_at, updated_at
FROM users
    WHERE franchise_id = :franchise_id
ORDER BY name`

	queryUpdateUser = `
UPDATE users
SET name = :name,
    phone_number = :phone_number,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password,
    updated_at = :updated_at
WHERE email = :email`

	queryUpdateProfilePhoto = `
UPDATE users
SET profile_photo_url = :profile_photo_url,
    updated_at = :updated_at
WHERE id = :id`

	queryDeactivateUser = `
UPDATE users
SET is_active = FALSE,
    updated_at = :updated_at
WHERE id = :id`
)
