package service

import (
	"context"

	"inventory-api/internal/model"
)

// ProductService defines the interface for product business operations.
type ProductService interface {
	// GetAll retrieves all products, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// Create validates the request, applies defaults for absent optional
	// fields, and stores a new product.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update validates and applies only the supplied fields of an existing
	// product.
	Update(ctx context.Context, id int64, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id int64) error

	// Stats computes aggregate counters over the whole inventory.
	Stats(ctx context.Context) (*model.InventoryStats, error)
}
