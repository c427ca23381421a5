package model

import "time"

// DefaultCategory is assigned when a product is created without a category.
const DefaultCategory = "General"

// Product represents a single inventory record.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateProductRequest is the payload for creating a product.
// Optional fields fall back to their defaults when absent.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Category *string  `json:"category" validate:"omitempty,max=50"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

// UpdateProductRequest is the payload for partially updating a product.
// Only supplied fields are validated and applied; absent fields are
// left untouched.
type UpdateProductRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Category *string  `json:"category" validate:"omitempty,max=50"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Quantity == nil && r.Price == nil
}

// InventoryStats holds aggregate counters over the whole products table.
type InventoryStats struct {
	TotalProducts       int64   `json:"total_products"`
	TotalQuantity       int64   `json:"total_quantity"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	DatabaseType        string  `json:"database_type"`
}
