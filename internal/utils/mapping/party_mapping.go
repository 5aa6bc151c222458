package mapping

import (
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		AddressStreet:  d.Address.Street,
		AddressCity:    d.Address.City,
		AddressState:   d.Address.State,
		AddressZipCode: d.Address.ZipCode,
		AddressCountry: d.Address.Country,
		CustomerType:   string(d.CustomerType),
		CreditLimit:    d.CreditLimit,
		Balance:        d.Balance,
		IsActive:       d.IsActive,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address: domain.Address{
			Street:  m.AddressStreet,
			City:    m.AddressCity,
			State:   m.AddressState,
			ZipCode: m.AddressZipCode,
			Country: m.AddressCountry,
		},
		CustomerType: domain.CustomerType(m.CustomerType),
		CreditLimit:  m.CreditLimit,
		Balance:      m.Balance,
		IsActive:     m.IsActive,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:       d.VendorID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		AddressStreet:  d.Address.Street,
		AddressCity:    d.Address.City,
		AddressState:   d.Address.State,
		AddressZipCode: d.Address.ZipCode,
		AddressCountry: d.Address.Country,
		Payable:        d.Payable,
		IsActive:       d.IsActive,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID: m.VendorID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Address: domain.Address{
			Street:  m.AddressStreet,
			City:    m.AddressCity,
			State:   m.AddressState,
			ZipCode: m.AddressZipCode,
			Country: m.AddressCountry,
		},
		Payable:     m.Payable,
		IsActive:    m.IsActive,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of model Vendors to domain Vendors
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}
