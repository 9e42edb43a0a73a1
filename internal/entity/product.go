package entity

import "time"

const (
	ProductCategoryFrame      = "frame"
	ProductCategoryLens       = "lens"
	ProductCategorySunglasses = "sunglasses"
	ProductCategoryAccessory  = "accessory"
)

func IsValidProductCategory(category string) bool {
	switch category {
	case ProductCategoryFrame, ProductCategoryLens, ProductCategorySunglasses, ProductCategoryAccessory:
		return true
	}
	return false
}

const (
	StockMovementIn  = "in"
	StockMovementOut = "out"
)

type Product struct {
	ID          string    `db:"id"`
	FranchiseID string    `db:"franchise_id"`
	SKU         string    `db:"sku"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Brand       string    `db:"brand"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	MinStock    int       `db:"min_stock"`
	PhotoURL    string    `db:"photo_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (p Product) BelowMinStock() bool {
	return p.Stock < p.MinStock
}

type StockMovement struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Quantity  int       `db:"quantity"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}
