package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	Search   string // matches name, SKU or barcode
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
}

// PartyFilter narrows customer and vendor listings.
type PartyFilter struct {
	Search string // matches name, email or phone
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Type       TransactionType
	Status     TransactionStatus
	CustomerID *string
	VendorID   *string
	FromDate   *time.Time
	ToDate     *time.Time
}
