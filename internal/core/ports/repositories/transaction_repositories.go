package repositories

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its items and payments.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions using token-based pagination.
	// It returns the transactions (items and payments included), a token for
	// the next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction allocates the transaction number, persists the
	// transaction with its items, applies the per-product stock deltas and
	// moves the party balance, all inside one database transaction with the
	// affected rows locked. The allocated ID and number are written back into
	// txn. Stock deltas are negative for sales and positive for purchases;
	// a sale that would drive any product below zero fails with
	// ErrInsufficientStock and nothing is persisted.
	SaveTransaction(ctx context.Context, txn *domain.Transaction, stockDeltas map[string]decimal.Decimal) error

	// RecordPayment appends a payment to a transaction, re-derives the status
	// from the paid amount and reduces the party balance, all inside one
	// database transaction with the transaction row locked. It fails with
	// ErrOverPayment when the payment would exceed the balance due and with
	// ErrConflict on a cancelled transaction. The updated transaction is returned.
	RecordPayment(ctx context.Context, transactionID string, payment domain.Payment, recordedBy string) (*domain.Transaction, error)

	// UpdateTransactionStatus sets an explicit status. Cancelled transactions
	// are terminal; the update fails with ErrConflict for them.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
