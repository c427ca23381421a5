package repository

import (
	"context"

	"inventory-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and returns the stored row with its
	// assigned ID and creation timestamp.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// GetAll retrieves all products, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil, nil when
	// no product with that ID exists.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update applies the supplied fields to an existing product and returns
	// the updated row. Returns nil, nil when no product with that ID exists.
	Update(ctx context.Context, id int64, update *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product by its ID. Returns false when no product
	// with that ID exists.
	Delete(ctx context.Context, id int64) (bool, error)

	// Stats computes aggregate counters over the whole products table.
	Stats(ctx context.Context) (*model.InventoryStats, error)
}
