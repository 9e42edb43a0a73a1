package auth

import "time"

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=15"`
	Password    string `json:"password" validate:"required,min=8,max=32"`
	Role        string `json:"role" validate:"required,oneof=admin franchise_manager attendant client"`
	FranchiseID string `json:"franchise_id" validate:"omitempty"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	AccessToken      string  `json:"accessToken"`
	ExpiresInMinutes float64 `json:"expiresInMinutes"`
}

type LoginUserGoogle struct {
	Email string `json:"email"`
}

type UserGoogle struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Picture       string `json:"picture"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Role            string    `json:"role"`
	FranchiseID     string    `json:"franchise_id,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateUserRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=15"`
}

type SendEmailOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required,min=5,max=5"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

type ProfilePhotoResponse struct {
	ID              string `json:"id"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}
