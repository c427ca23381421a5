package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product row and returns it with the assigned ID and
// creation timestamp.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (name, category, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, quantity, price, created_at
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, product.Name, product.Category, product.Quantity, product.Price).
		Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &p, nil
}

// GetAll retrieves all products ordered by creation time, newest first.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	// id breaks ties between rows created within the same timestamp tick.
	query := `
		SELECT id, name, category, quantity, price, created_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, category, quantity, price, created_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Update applies only the supplied fields in a single UPDATE statement and
// returns the updated row.
func (r *productRepository) Update(ctx context.Context, id int64, update *model.UpdateProductRequest) (*model.Product, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Category != nil {
		args = append(args, *update.Category)
		sets = append(sets, fmt.Sprintf("category = $%d", len(args)))
	}
	if update.Quantity != nil {
		args = append(args, *update.Quantity)
		sets = append(sets, fmt.Sprintf("quantity = $%d", len(args)))
	}
	if update.Price != nil {
		args = append(args, *update.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING id, name, category, quantity, price, created_at
	`, strings.Join(sets, ", "), len(args))

	var p model.Product
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes a product row by its ID.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Stats computes aggregate counters over the whole products table. Sums are
// coalesced to zero so an empty table yields zeros rather than NULLs.
func (r *productRepository) Stats(ctx context.Context) (*model.InventoryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(price * quantity), 0)
		FROM products
	`

	var stats model.InventoryStats
	err := r.pool.QueryRow(ctx, query).
		Scan(&stats.TotalProducts, &stats.TotalQuantity, &stats.TotalInventoryValue)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to compute inventory stats")
		return nil, fmt.Errorf("failed to compute inventory stats: %w", err)
	}

	return &stats, nil
}
