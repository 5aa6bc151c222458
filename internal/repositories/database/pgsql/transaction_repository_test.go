package pgsql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by IBMS_TEST_DATABASE_URL, or skips
// the test when the variable is unset. The database must already be migrated.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("IBMS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("IBMS_TEST_DATABASE_URL not set; skipping database integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(context.Background()))
	return pool
}

// TestSaveTransaction_ConcurrentPostingNumbersUnique posts many sales against
// the same counter row in parallel and verifies no transaction number is
// allocated twice and every stock delta lands exactly once.
func TestSaveTransaction_ConcurrentPostingNumbersUnique(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repos := NewRepositoryProvider(pool)

	userID := uuid.NewString()
	now := time.Now().UTC()
	initialStock := decimal.NewFromInt(1000)

	product := &domain.Product{
		ProductID: uuid.NewString(),
		SKU:       "SKU-" + uuid.NewString(),
		Name:      "Concurrency Widget",
		Category:  "test",
		Unit:      "piece",
		Price:     decimal.NewFromInt(50),
		CostPrice: decimal.NewFromInt(30),
		Quantity:  initialStock,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID,
		},
	}
	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, product))

	customer := &domain.Customer{
		CustomerID:   uuid.NewString(),
		Name:         "Concurrency Buyer",
		Email:        uuid.NewString() + "@example.test",
		CustomerType: domain.CustomerIndividual,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID,
		},
	}
	require.NoError(t, repos.CustomerRepo.SaveCustomer(ctx, customer))

	const posters = 50

	results := make(chan string, posters)
	errs := make(chan error, posters)
	var wg sync.WaitGroup
	for i := 0; i < posters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn := &domain.Transaction{
				TransactionID: uuid.NewString(),
				Type:          domain.Sale,
				CustomerID:    &customer.CustomerID,
				Items: []domain.TransactionItem{{
					ItemID:    uuid.NewString(),
					ProductID: product.ProductID,
					Quantity:  decimal.NewFromInt(1),
					UnitPrice: decimal.NewFromInt(50),
					LineTotal: decimal.NewFromInt(50),
				}},
				Subtotal:        decimal.NewFromInt(50),
				Total:           decimal.NewFromInt(50),
				PaidAmount:      decimal.Zero,
				Status:          domain.StatusPending,
				TransactionDate: now,
				AuditFields: domain.AuditFields{
					CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID,
				},
			}
			deltas := map[string]decimal.Decimal{product.ProductID: decimal.NewFromInt(-1)}
			if err := repos.TransactionRepo.SaveTransaction(ctx, txn, deltas); err != nil {
				errs <- err
				return
			}
			results <- txn.TransactionNumber
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[string]bool, posters)
	for number := range results {
		require.NotEmpty(t, number)
		require.False(t, seen[number], "transaction number %s allocated twice", number)
		seen[number] = true
	}
	require.Len(t, seen, posters)

	// Every posting applied its stock delta exactly once.
	updated, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	require.True(t, updated.Quantity.Equal(initialStock.Sub(decimal.NewFromInt(posters))),
		"stock was %s", updated.Quantity)
}
