package inventory

import "time"

type CreateProductRequest struct {
	FranchiseID string  `json:"franchise_id" form:"franchise_id" validate:"required"`
	SKU         string  `json:"sku" form:"sku" validate:"required,min=3,max=64"`
	Name        string  `json:"name" form:"name" validate:"required,min=3,max=255"`
	Description string  `json:"description" form:"description" validate:"omitempty,max=1000"`
	Category    string  `json:"category" form:"category" validate:"required,oneof=frame lens sunglasses accessory"`
	Brand       string  `json:"brand" form:"brand" validate:"omitempty,max=128"`
	Price       float64 `json:"price" form:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" form:"stock" validate:"gte=0"`
	MinStock    int     `json:"min_stock" form:"min_stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=3,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Brand       string  `json:"brand" validate:"omitempty,max=128"`
	Price       float64 `json:"price" validate:"omitempty,gt=0"`
	MinStock    int     `json:"min_stock" validate:"omitempty,gte=0"`
}

type StockMovementRequest struct {
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"omitempty,max=255"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	FranchiseID string    `json:"franchise_id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	LowStock    bool      `json:"low_stock"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
