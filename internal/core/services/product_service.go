package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

var (
	ErrNegativeMoney    = errors.New("monetary amounts must not be negative")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// productService provides product catalog and stock operations.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func validateProductAmounts(price, costPrice, quantity, minStockLevel decimal.Decimal) error {
	if price.IsNegative() || costPrice.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeMoney)
	}
	if quantity.IsNegative() || minStockLevel.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeQuantity)
	}
	return nil
}

// CreateProduct persists a new product.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if err := validateProductAmounts(req.Price, req.CostPrice, req.Quantity, req.MinStockLevel); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Unit:          req.Unit,
		Price:         req.Price,
		CostPrice:     req.CostPrice,
		Quantity:      req.Quantity,
		MinStockLevel: req.MinStockLevel,
		Supplier:      req.Supplier,
		Barcode:       req.Barcode,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, &product); err != nil {
		s.LogError(ctx, err, "failed to save product", slog.String("sku", req.SKU))
		return nil, err
	}

	s.LogInfo(ctx, "product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

// GetProductByID retrieves a product by ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves a paginated, filtered list of products.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	filter := domain.ProductFilter{
		Category: params.Category,
		Search:   params.Search,
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		InStock:  params.InStock,
	}
	products, nextToken, err := s.productRepo.ListProducts(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListProductsResponse{
		Products:  dto.ToProductResponses(products),
		NextToken: nextToken,
	}, nil
}

// ListCategories retrieves the distinct product categories.
func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.ListCategories(ctx)
}

// ListLowStockProducts retrieves products at or below their threshold.
func (s *productService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListLowStockProducts(ctx)
}

// UpdateProduct applies the provided field updates.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.MinStockLevel != nil {
		product.MinStockLevel = *req.MinStockLevel
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if err := validateProductAmounts(product.Price, product.CostPrice, product.Quantity, product.MinStockLevel); err != nil {
		return nil, err
	}

	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = requestingUserID

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

// AdjustStock applies a manual stock correction outside the posting flow.
func (s *productService) AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, requestingUserID string) (*domain.Product, error) {
	if req.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeQuantity)
	}

	now := time.Now().UTC()
	var updated *domain.Product
	var err error
	switch req.Operation {
	case "set":
		updated, err = s.productRepo.SetStockQuantity(ctx, productID, req.Quantity, requestingUserID, now)
	case "add":
		updated, err = s.productRepo.ApplyStockDelta(ctx, productID, req.Quantity, requestingUserID, now)
	case "subtract":
		updated, err = s.productRepo.ApplyStockDelta(ctx, productID, req.Quantity.Neg(), requestingUserID, now)
	default:
		return nil, fmt.Errorf("%w: unknown stock operation %q", apperrors.ErrValidation, req.Operation)
	}
	if err != nil {
		s.LogError(ctx, err, "failed to adjust stock", slog.String("product_id", productID), slog.String("operation", req.Operation))
		return nil, err
	}

	s.LogInfo(ctx, "stock adjusted",
		slog.String("product_id", productID),
		slog.String("operation", req.Operation),
		slog.String("quantity", req.Quantity.String()))
	return updated, nil
}

// DeactivateProduct marks a product as inactive. Posted transactions keep
// referencing it, so nothing is ever deleted.
func (s *productService) DeactivateProduct(ctx context.Context, productID string, requestingUserID string) error {
	if err := s.productRepo.DeactivateProduct(ctx, productID, requestingUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate product", slog.String("product_id", productID))
		return err
	}
	s.LogInfo(ctx, "product deactivated", slog.String("product_id", productID))
	return nil
}
