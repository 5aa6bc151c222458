package services

import (
	"context"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated, filtered list of customers.
	ListCustomers(ctx context.Context, params dto.ListPartiesParams) (*dto.ListCustomersResponse, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates customer details. Balance moves only through
	// posted transactions and payments.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)

	// DeactivateCustomer marks a customer as inactive.
	DeactivateCustomer(ctx context.Context, customerID string, requestingUserID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}

// VendorReaderSvc defines read operations for vendor data
type VendorReaderSvc interface {
	// GetVendorByID retrieves a specific vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated, filtered list of vendors.
	ListVendors(ctx context.Context, params dto.ListPartiesParams) (*dto.ListVendorsResponse, error)
}

// VendorWriterSvc defines write operations for vendor data
type VendorWriterSvc interface {
	// CreateVendor persists a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)

	// UpdateVendor updates vendor details. Payable moves only through posted
	// transactions and payments.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error)

	// DeactivateVendor marks a vendor as inactive.
	DeactivateVendor(ctx context.Context, vendorID string, requestingUserID string) error
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
