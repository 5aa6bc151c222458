package repositories

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves the given products keyed by ID. Missing IDs
	// are simply absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of active products using token-based pagination.
	// It returns the products, a token for the next page, and an error.
	ListProducts(ctx context.Context, filter domain.ProductFilter, limit int, nextToken *string) ([]domain.Product, *string, error)

	// ListCategories retrieves the distinct categories of active products.
	ListCategories(ctx context.Context) ([]string, error)

	// ListLowStockProducts retrieves active products at or below their low-stock threshold.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product *domain.Product) error

	// UpdateProduct updates a product's descriptive fields and prices.
	// Quantity is not touched here.
	UpdateProduct(ctx context.Context, product *domain.Product) error

	// ApplyStockDelta atomically shifts a product's quantity by delta and
	// returns the updated product. It fails with ErrInsufficientStock when
	// the result would be negative.
	ApplyStockDelta(ctx context.Context, productID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error)

	// SetStockQuantity atomically sets a product's quantity to an absolute
	// value and returns the updated product.
	SetStockQuantity(ctx context.Context, productID string, quantity decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error)

	// DeactivateProduct marks a product as inactive.
	DeactivateProduct(ctx context.Context, productID string, updatedBy string, updatedAt time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
