package franchise

import "time"

type CreateFranchiseRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=255"`
	CNPJ    string `json:"cnpj" validate:"required,min=14,max=18"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=10,max=15"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required,len=2"`
}

type UpdateFranchiseRequest struct {
	Name    string `json:"name" validate:"omitempty,min=3,max=255"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,min=10,max=15"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state" validate:"omitempty,len=2"`
	Status  string `json:"status" validate:"omitempty,oneof=active suspended closed"`
}

type FranchiseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FranchiseListResponse struct {
	Franchises []FranchiseResponse `json:"franchises"`
	Total      int                 `json:"total"`
}

type FranchiseUserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type FranchiseUserListResponse struct {
	Users []FranchiseUserResponse `json:"users"`
	Total int                     `json:"total"`
}
