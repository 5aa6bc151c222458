package services

import (
	"context"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated, filtered list of products.
	ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error)

	// ListCategories retrieves the distinct product categories.
	ListCategories(ctx context.Context) ([]string, error)

	// ListLowStockProducts retrieves products at or below their threshold.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct updates product details. Stock moves only through
	// AdjustStock or the transaction poster.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error)

	// AdjustStock applies a manual stock correction.
	AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, requestingUserID string) (*domain.Product, error)

	// DeactivateProduct marks a product as inactive.
	DeactivateProduct(ctx context.Context, productID string, requestingUserID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
