package entity

import "time"

const (
	RoleAdmin            = "admin"
	RoleFranchiseManager = "franchise_manager"
	RoleAttendant        = "attendant"
	RoleClient           = "client"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFranchiseManager, RoleAttendant, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	Password        string    `db:"password"`
	PhoneNumber     string    `db:"phone_number"`
	Role            string    `db:"role"`
	FranchiseID     string    `db:"franchise_id"`
	ProfilePhotoURL string    `db:"profile_photo_url"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID          string
	Name        string
	Email       string
	Role        string
	FranchiseID string
}
