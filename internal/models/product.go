package models

import "github.com/shopspring/decimal"

// Product mirrors the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	SKU           string          `db:"sku"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Unit          string          `db:"unit"`
	Price         decimal.Decimal `db:"price"`
	CostPrice     decimal.Decimal `db:"cost_price"`
	Quantity      decimal.Decimal `db:"quantity"`
	MinStockLevel decimal.Decimal `db:"min_stock_level"`
	Supplier      string          `db:"supplier"`
	Barcode       string          `db:"barcode"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
