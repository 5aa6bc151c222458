package services

import (
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, cfg),
		User:        NewUserService(repos.UserRepo),
		Product:     NewProductService(repos.ProductRepo),
		Customer:    NewCustomerService(repos.CustomerRepo),
		Vendor:      NewVendorService(repos.VendorRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.ProductRepo, repos.CustomerRepo, repos.VendorRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
