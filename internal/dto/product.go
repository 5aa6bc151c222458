package dto

import (
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for creating a product.
// Decimal fields are range-checked in the service layer; binding covers
// presence and enumerations.
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required,max=50"`
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description" binding:"max=500"`
	Category      string          `json:"category" binding:"required,max=100"`
	Unit          string          `json:"unit" binding:"required,oneof=piece kg liter meter box pack"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	Supplier      string          `json:"supplier" binding:"max=100"`
	Barcode       string          `json:"barcode" binding:"max=100"`
}

// UpdateProductRequest carries optional field updates for a product.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Description   *string          `json:"description,omitempty" binding:"omitempty,max=500"`
	Category      *string          `json:"category,omitempty" binding:"omitempty,max=100"`
	Unit          *string          `json:"unit,omitempty" binding:"omitempty,oneof=piece kg liter meter box pack"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	CostPrice     *decimal.Decimal `json:"costPrice,omitempty"`
	MinStockLevel *decimal.Decimal `json:"minStockLevel,omitempty"`
	Supplier      *string          `json:"supplier,omitempty" binding:"omitempty,max=100"`
	Barcode       *string          `json:"barcode,omitempty" binding:"omitempty,max=100"`
}

// AdjustStockRequest sets or shifts a product's quantity outside the posting
// flow (stocktake corrections, damaged goods).
type AdjustStockRequest struct {
	// Operation is how Quantity is applied to the current stock level.
	Operation string          `json:"operation" binding:"required,oneof=set add subtract"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
	Supplier      string          `json:"supplier,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	IsActive      bool            `json:"isActive"`
	IsLowStock    bool            `json:"isLowStock"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListProductsParams are the query parameters for listing products.
type ListProductsParams struct {
	Category  string           `form:"category"`
	MinPrice  *decimal.Decimal `form:"minPrice"`
	MaxPrice  *decimal.Decimal `form:"maxPrice"`
	InStock   bool             `form:"inStock"`
	Search    string           `form:"search"`
	Limit     int              `form:"limit"`
	NextToken *string          `form:"nextToken"`
}

// ListProductsResponse is a page of products with an optional cursor.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToProductResponse converts a domain.Product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Unit:          p.Unit,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Supplier:      p.Supplier,
		Barcode:       p.Barcode,
		IsActive:      p.IsActive,
		IsLowStock:    p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
