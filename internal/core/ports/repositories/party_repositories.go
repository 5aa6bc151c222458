package repositories

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of active customers using token-based pagination.
	ListCustomers(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Customer, *string, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer *domain.Customer) error

	// UpdateCustomer updates a customer's descriptive fields. Balance is only
	// ever moved by the transaction poster and payment recorder.
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error

	// DeactivateCustomer marks a customer as inactive.
	DeactivateCustomer(ctx context.Context, customerID string, updatedBy string, updatedAt time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a vendor by its unique identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated list of active vendors using token-based pagination.
	ListVendors(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Vendor, *string, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor *domain.Vendor) error

	// UpdateVendor updates a vendor's descriptive fields. Payable is only
	// ever moved by the transaction poster and payment recorder.
	UpdateVendor(ctx context.Context, vendor *domain.Vendor) error

	// DeactivateVendor marks a vendor as inactive.
	DeactivateVendor(ctx context.Context, vendorID string, updatedBy string, updatedAt time.Time) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
