package pgsql

import (
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	vendorRepo := newPgxVendorRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool, transactionRepo)

	return portsrepo.RepositoryProvider{
		ProductRepo:     productRepo,
		CustomerRepo:    customerRepo,
		VendorRepo:      vendorRepo,
		TransactionRepo: transactionRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
