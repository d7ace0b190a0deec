package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/eventdesk/eventdesk-api/internal/domain/repository"
	"github.com/eventdesk/eventdesk-api/pkg/apperror"
	"github.com/google/uuid"
)

// ProductService handles stall product operations
type ProductService struct {
	productRepo repository.ProductRepository
	stallRepo   repository.StallRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	stallRepo repository.StallRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		stallRepo:   stallRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	StallID      uuid.UUID
	ItemName     string
	CostPrice    float64
	SellingPrice *float64
	EventMargin  int
}

// CreateProduct adds a menu item to a stall
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError
	if input.ItemName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "item_name", Message: "Item name is required",
		})
	}
	if input.CostPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "cost_price", Message: "Cost price cannot be negative",
		})
	}
	if input.SellingPrice != nil && *input.SellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "selling_price", Message: "Selling price cannot be negative",
		})
	}
	if input.EventMargin < 0 || input.EventMargin > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "event_margin", Message: "Event margin must be between 0 and 100",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	stall, err := s.stallRepo.GetByID(ctx, input.StallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	var sellingPrice *int64
	if input.SellingPrice != nil {
		v := int64(*input.SellingPrice * 100)
		sellingPrice = &v
	}

	product := &entity.Product{
		StallID:      input.StallID,
		ItemName:     input.ItemName,
		CostPrice:    int64(input.CostPrice * 100),
		SellingPrice: sellingPrice,
		EventMargin:  input.EventMargin,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ItemName     *string
	CostPrice    *float64
	SellingPrice *float64
	EventMargin  *int
}

// UpdateProduct updates a product. Price changes never rewrite existing
// bills; line items are snapshots frozen at billing time.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.ItemName != nil {
		product.ItemName = *input.ItemName
	}
	if input.CostPrice != nil {
		product.CostPrice = int64(*input.CostPrice * 100)
	}
	if input.SellingPrice != nil {
		v := int64(*input.SellingPrice * 100)
		product.SellingPrice = &v
	}
	if input.EventMargin != nil {
		if *input.EventMargin < 0 || *input.EventMargin > 100 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "event_margin", Message: "Event margin must be between 0 and 100"},
			})
		}
		product.EventMargin = *input.EventMargin
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, error) {
	return s.productRepo.List(ctx, params)
}
