package services

import (
	"context"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with items and payments.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated, filtered list of transactions.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and atomically posts a sale or purchase:
	// prices are snapshotted, totals computed, stock and the party balance
	// moved, and a sequential number allocated.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// RecordPayment appends a payment and re-derives the payment status.
	RecordPayment(ctx context.Context, transactionID string, req dto.RecordPaymentRequest, requestingUserID string) (*domain.Transaction, error)

	// UpdateTransactionStatus moves a transaction to an explicit status.
	UpdateTransactionStatus(ctx context.Context, transactionID string, req dto.UpdateTransactionStatusRequest, requestingUserID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
