package dto

import (
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionItemRequest is one product line on a new transaction.
// Quantity must be positive; the service enforces it so the error carries the
// offending product ID.
type CreateTransactionItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateTransactionRequest is the payload for posting a sale or purchase.
// CustomerID is required for sales and VendorID for purchases; the other must
// be absent.
type CreateTransactionRequest struct {
	Type            string                         `json:"type" binding:"required,oneof=sale purchase"`
	CustomerID      *string                        `json:"customerID,omitempty" binding:"required_if=Type sale,excluded_if=Type purchase"`
	VendorID        *string                        `json:"vendorID,omitempty" binding:"required_if=Type purchase,excluded_if=Type sale"`
	Items           []CreateTransactionItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountPercent decimal.Decimal                `json:"discountPercent"`
	TaxPercent      decimal.Decimal                `json:"taxPercent"`
	Notes           string                         `json:"notes" binding:"max=500"`
	TransactionDate *time.Time                     `json:"transactionDate,omitempty"`
}

// RecordPaymentRequest records a settlement against a transaction.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,oneof=cash card bank_transfer cheque upi credit"`
	Reference string          `json:"reference" binding:"max=100"`
}

// UpdateTransactionStatusRequest moves a transaction to an explicit status.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft pending partial paid overdue cancelled"`
}

// TransactionItemResponse is the API representation of a transaction line.
type TransactionItemResponse struct {
	ItemID    string          `json:"itemID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// PaymentResponse is the API representation of one recorded payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paidAt"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID     string                    `json:"transactionID"`
	TransactionNumber string                    `json:"transactionNumber"`
	Type              string                    `json:"type"`
	CustomerID        *string                   `json:"customerID,omitempty"`
	VendorID          *string                   `json:"vendorID,omitempty"`
	Items             []TransactionItemResponse `json:"items"`
	Subtotal          decimal.Decimal           `json:"subtotal"`
	DiscountPercent   decimal.Decimal           `json:"discountPercent"`
	DiscountAmount    decimal.Decimal           `json:"discountAmount"`
	TaxPercent        decimal.Decimal           `json:"taxPercent"`
	TaxAmount         decimal.Decimal           `json:"taxAmount"`
	Total             decimal.Decimal           `json:"total"`
	PaidAmount        decimal.Decimal           `json:"paidAmount"`
	BalanceDue        decimal.Decimal           `json:"balanceDue"`
	Status            string                    `json:"status"`
	Payments          []PaymentResponse         `json:"payments"`
	Notes             string                    `json:"notes,omitempty"`
	TransactionDate   time.Time                 `json:"transactionDate"`
	CreatedAt         time.Time                 `json:"createdAt"`
	CreatedBy         string                    `json:"createdBy"`
}

// ListTransactionsParams are the query parameters for listing transactions.
type ListTransactionsParams struct {
	Type       string     `form:"type" binding:"omitempty,oneof=sale purchase"`
	Status     string     `form:"status" binding:"omitempty,oneof=draft pending partial paid overdue cancelled"`
	CustomerID *string    `form:"customerID"`
	VendorID   *string    `form:"vendorID"`
	FromDate   *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"toDate" time_format:"2006-01-02"`
	Limit      int        `form:"limit"`
	NextToken  *string    `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions with an optional cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemResponse{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	payments := make([]PaymentResponse, len(t.Payments))
	for i, p := range t.Payments {
		payments[i] = PaymentResponse{
			PaymentID: p.PaymentID,
			Amount:    p.Amount,
			Method:    string(p.Method),
			Reference: p.Reference,
			PaidAt:    p.PaidAt,
		}
	}
	return TransactionResponse{
		TransactionID:     t.TransactionID,
		TransactionNumber: t.TransactionNumber,
		Type:              string(t.Type),
		CustomerID:        t.CustomerID,
		VendorID:          t.VendorID,
		Items:             items,
		Subtotal:          t.Subtotal,
		DiscountPercent:   t.DiscountPercent,
		DiscountAmount:    t.DiscountAmount,
		TaxPercent:        t.TaxPercent,
		TaxAmount:         t.TaxAmount,
		Total:             t.Total,
		PaidAmount:        t.PaidAmount,
		BalanceDue:        t.BalanceDue(),
		Status:            string(t.Status),
		Payments:          payments,
		Notes:             t.Notes,
		TransactionDate:   t.TransactionDate,
		CreatedAt:         t.CreatedAt,
		CreatedBy:         t.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}
