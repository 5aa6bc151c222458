package mapping

import (
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Items and payments map separately since they live in their own tables.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		TransactionNumber: d.TransactionNumber,
		Type:              string(d.Type),
		CustomerID:        d.CustomerID,
		VendorID:          d.VendorID,
		Subtotal:          d.Subtotal,
		DiscountPercent:   d.DiscountPercent,
		DiscountAmount:    d.DiscountAmount,
		TaxPercent:        d.TaxPercent,
		TaxAmount:         d.TaxAmount,
		Total:             d.Total,
		PaidAmount:        d.PaidAmount,
		Status:            string(d.Status),
		Notes:             d.Notes,
		TransactionDate:   d.TransactionDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// The caller attaches items and payments.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		Type:              domain.TransactionType(m.Type),
		CustomerID:        m.CustomerID,
		VendorID:          m.VendorID,
		Subtotal:          m.Subtotal,
		DiscountPercent:   m.DiscountPercent,
		DiscountAmount:    m.DiscountAmount,
		TaxPercent:        m.TaxPercent,
		TaxAmount:         m.TaxAmount,
		Total:             m.Total,
		PaidAmount:        m.PaidAmount,
		Status:            domain.TransactionStatus(m.Status),
		Notes:             m.Notes,
		TransactionDate:   m.TransactionDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTransactionItem converts a domain TransactionItem to its model form.
func ToModelTransactionItem(d domain.TransactionItem, transactionID string, position int) models.TransactionItem {
	return models.TransactionItem{
		ItemID:        d.ItemID,
		TransactionID: transactionID,
		ProductID:     d.ProductID,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		LineTotal:     d.LineTotal,
		Position:      position,
	}
}

// ToDomainTransactionItem converts a model TransactionItem to its domain form.
func ToDomainTransactionItem(m models.TransactionItem) domain.TransactionItem {
	return domain.TransactionItem{
		ItemID:    m.ItemID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		LineTotal: m.LineTotal,
	}
}

// ToModelPayment converts a domain Payment to its model form.
func ToModelPayment(d domain.Payment, transactionID string) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		TransactionID: transactionID,
		Amount:        d.Amount,
		Method:        string(d.Method),
		Reference:     d.Reference,
		PaidAt:        d.PaidAt,
	}
}

// ToDomainPayment converts a model Payment to its domain form.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		Amount:    m.Amount,
		Method:    domain.PaymentMethod(m.Method),
		Reference: m.Reference,
		PaidAt:    m.PaidAt,
	}
}
