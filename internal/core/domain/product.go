package domain

import "github.com/shopspring/decimal"

// Product is a stocked item that can appear on sale and purchase transactions.
// Quantity is only ever mutated through the transaction poster or the explicit
// stock-adjustment operation, never directly by handlers.
type Product struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"` // piece, kg, liter, meter, box, pack
	Price         decimal.Decimal `json:"price"`         // sale unit price, >= 0
	CostPrice     decimal.Decimal `json:"costPrice"`     // purchase unit price, >= 0
	Quantity      decimal.Decimal `json:"quantity"`      // on hand, never negative after a posted sale
	MinStockLevel decimal.Decimal `json:"minStockLevel"` // low-stock threshold
	Supplier      string          `json:"supplier"`
	Barcode       string          `json:"barcode"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// IsLowStock reports whether the product is at or below its low-stock threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity.LessThanOrEqual(p.MinStockLevel)
}
