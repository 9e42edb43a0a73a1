package entity

import "time"

const (
	FranchiseStatusActive    = "active"
	FranchiseStatusSuspended = "suspended"
	FranchiseStatusClosed    = "closed"
)

func IsValidFranchiseStatus(status string) bool {
	switch status {
	case FranchiseStatusActive, FranchiseStatusSuspended, FranchiseStatusClosed:
		return true
	}
	return false
}

type Franchise struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CNPJ      string    `db:"cnpj"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	State     string    `db:"state"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
