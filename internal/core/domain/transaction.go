package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes stock-decreasing sales from stock-increasing purchases.
type TransactionType string

const (
	Sale     TransactionType = "sale"
	Purchase TransactionType = "purchase"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft     TransactionStatus = "draft"
	StatusPending   TransactionStatus = "pending"
	StatusPartial   TransactionStatus = "partial"
	StatusPaid      TransactionStatus = "paid"
	StatusOverdue   TransactionStatus = "overdue"
	StatusCancelled TransactionStatus = "cancelled"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCheque       PaymentMethod = "cheque"
	MethodUPI          PaymentMethod = "upi"
	MethodCredit       PaymentMethod = "credit"
)

// TransactionItem is one product line on a transaction. UnitPrice is
// snapshotted from the product at post time and never re-read afterwards.
type TransactionItem struct {
	ItemID    string          `json:"itemID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`  // > 0
	UnitPrice decimal.Decimal `json:"unitPrice"` // snapshot of Product.Price (sale) / Product.CostPrice (purchase)
	LineTotal decimal.Decimal `json:"lineTotal"` // Quantity * UnitPrice, before transaction-level discount/tax
}

// Payment is one settlement entry recorded against a transaction.
type Payment struct {
	PaymentID string          `json:"paymentID"`
	Amount    decimal.Decimal `json:"amount"` // > 0
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference"`
	PaidAt    time.Time       `json:"paidAt"`
}

// Transaction is a posted sale or purchase. Totals are computed once at post
// time and stored; re-reads never recompute them. Items are immutable after
// posting; payments are append-only.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	TransactionNumber string            `json:"transactionNumber"` // unique, sequential per type+period
	Type              TransactionType   `json:"type"`
	CustomerID        *string           `json:"customerID,omitempty"` // set iff Type == Sale
	VendorID          *string           `json:"vendorID,omitempty"`   // set iff Type == Purchase
	Items             []TransactionItem `json:"items"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	DiscountPercent   decimal.Decimal   `json:"discountPercent"` // [0,100]
	DiscountAmount    decimal.Decimal   `json:"discountAmount"`
	TaxPercent        decimal.Decimal   `json:"taxPercent"` // [0,100]
	TaxAmount         decimal.Decimal   `json:"taxAmount"`
	Total             decimal.Decimal   `json:"total"` // Subtotal - DiscountAmount + TaxAmount
	PaidAmount        decimal.Decimal   `json:"paidAmount"`
	Status            TransactionStatus `json:"status"`
	Payments          []Payment         `json:"payments"`
	Notes             string            `json:"notes"`
	TransactionDate   time.Time         `json:"transactionDate"`
	AuditFields
}

// PaymentStatusFor derives the payment-driven status from paid vs total.
// It only covers the pending/partial/paid states; draft, overdue and
// cancelled are reachable solely through the explicit status operation.
func PaymentStatusFor(paid, total decimal.Decimal) TransactionStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return StatusPending
	case paid.LessThan(total):
		return StatusPartial
	default:
		return StatusPaid
	}
}

// BalanceDue is the outstanding amount on the transaction, never negative.
func (t Transaction) BalanceDue() decimal.Decimal {
	due := t.Total.Sub(t.PaidAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
