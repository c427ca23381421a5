package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products, newest first.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Create validates the request, fills in defaults, and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     req.Name,
		Category: model.DefaultCategory,
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", created.ID).
		Str("name", created.Name).
		Msg("product created")

	return created, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Update validates the supplied fields and applies them to an existing product.
func (s *productService) Update(ctx context.Context, id int64, req *model.UpdateProductRequest) (*model.Product, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// omitempty skips min=1 for a pointer to the empty string, so an
	// explicitly supplied empty name has to be caught by hand.
	if req.Name != nil && *req.Name == "" {
		return nil, model.NewValidationError("name must not be empty")
	}

	product, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// Stats computes aggregate counters over the whole inventory, fresh per call.
func (s *productService) Stats(ctx context.Context) (*model.InventoryStats, error) {
	stats, err := s.productRepo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute stats")
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	s.logger.Debug().
		Int64("total_products", stats.TotalProducts).
		Int64("total_quantity", stats.TotalQuantity).
		Msg("computed inventory stats")

	return stats, nil
}

// validateRequest runs struct validation and translates the first failure
// into a client-facing domain error.
func (s *productService) validateRequest(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return model.NewValidationError(validationMessage(fieldErrors[0]))
	}

	return fmt.Errorf("failed to validate request: %w", err)
}

// validationMessage renders a single field error as a human-readable message.
func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required and must not be empty", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
