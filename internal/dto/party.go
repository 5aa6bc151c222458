package dto

import (
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddressDTO mirrors domain.Address on the wire.
type AddressDTO struct {
	Street  string `json:"street" binding:"max=200"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zipCode" binding:"max=20"`
	Country string `json:"country" binding:"max=100"`
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email"`
	Phone        string          `json:"phone" binding:"required,max=20"`
	Address      AddressDTO      `json:"address"`
	CustomerType string          `json:"customerType" binding:"omitempty,oneof=individual business"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Notes        string          `json:"notes" binding:"max=500"`
}

// UpdateCustomerRequest carries optional field updates for a customer.
type UpdateCustomerRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Email        *string          `json:"email,omitempty" binding:"omitempty,email"`
	Phone        *string          `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address      *AddressDTO      `json:"address,omitempty"`
	CustomerType *string          `json:"customerType,omitempty" binding:"omitempty,oneof=individual business"`
	CreditLimit  *decimal.Decimal `json:"creditLimit,omitempty"`
	Notes        *string          `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// CustomerResponse is the API representation of a customer.
type CustomerResponse struct {
	CustomerID   string          `json:"customerID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      AddressDTO      `json:"address"`
	CustomerType string          `json:"customerType"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"isActive"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CreateVendorRequest is the payload for creating a vendor.
type CreateVendorRequest struct {
	Name    string     `json:"name" binding:"required,max=100"`
	Email   string     `json:"email" binding:"required,email"`
	Phone   string     `json:"phone" binding:"required,max=20"`
	Address AddressDTO `json:"address"`
	Notes   string     `json:"notes" binding:"max=500"`
}

// UpdateVendorRequest carries optional field updates for a vendor.
type UpdateVendorRequest struct {
	Name    *string     `json:"name,omitempty" binding:"omitempty,max=100"`
	Email   *string     `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string     `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address *AddressDTO `json:"address,omitempty"`
	Notes   *string     `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// VendorResponse is the API representation of a vendor.
type VendorResponse struct {
	VendorID  string          `json:"vendorID"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   AddressDTO      `json:"address"`
	Payable   decimal.Decimal `json:"payable"`
	IsActive  bool            `json:"isActive"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListPartiesParams are the query parameters shared by the customer and
// vendor list endpoints.
type ListPartiesParams struct {
	Search    string  `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListCustomersResponse is a page of customers with an optional cursor.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ListVendorsResponse is a page of vendors with an optional cursor.
type ListVendorsResponse struct {
	Vendors   []VendorResponse `json:"vendors"`
	NextToken *string          `json:"nextToken,omitempty"`
}

func toAddressDTO(a domain.Address) AddressDTO {
	return AddressDTO{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// ToDomainAddress converts an AddressDTO to its domain form.
func (a AddressDTO) ToDomainAddress() domain.Address {
	return domain.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// ToCustomerResponse converts a domain.Customer to its API representation.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      toAddressDTO(c.Address),
		CustomerType: string(c.CustomerType),
		CreditLimit:  c.CreditLimit,
		Balance:      c.Balance,
		IsActive:     c.IsActive,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// ToVendorResponse converts a domain.Vendor to its API representation.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   toAddressDTO(v.Address),
		Payable:   v.Payable,
		IsActive:  v.IsActive,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}
