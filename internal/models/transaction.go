package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Items and payments live in
// their own tables and are loaded separately.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	TransactionNumber string          `db:"transaction_number"`
	Type              string          `db:"txn_type"`
	CustomerID        *string         `db:"customer_id"`
	VendorID          *string         `db:"vendor_id"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	DiscountPercent   decimal.Decimal `db:"discount_percent"`
	DiscountAmount    decimal.Decimal `db:"discount_amount"`
	TaxPercent        decimal.Decimal `db:"tax_percent"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	Total             decimal.Decimal `db:"total"`
	PaidAmount        decimal.Decimal `db:"paid_amount"`
	Status            string          `db:"status"`
	Notes             string          `db:"notes"`
	TransactionDate   time.Time       `db:"transaction_date"`
	AuditFields
}

// TransactionItem mirrors the transaction_items table.
type TransactionItem struct {
	ItemID        string          `db:"item_id"`
	TransactionID string          `db:"transaction_id"`
	ProductID     string          `db:"product_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	LineTotal     decimal.Decimal `db:"line_total"`
	Position      int             `db:"position"`
}

// Payment mirrors the transaction_payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	TransactionID string          `db:"transaction_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Reference     string          `db:"reference"`
	PaidAt        time.Time       `db:"paid_at"`
}
