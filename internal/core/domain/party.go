package domain

import "github.com/shopspring/decimal"

// Address is the postal address attached to customers and vendors.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// CustomerType distinguishes retail individuals from business customers.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
)

// Customer is a party that buys from us. Balance is the running amount the
// customer owes (positive = receivable); it is adjusted only by posted sale
// transactions and payments recorded against them.
type Customer struct {
	CustomerID   string          `json:"customerID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      Address         `json:"address"`
	CustomerType CustomerType    `json:"customerType"`
	CreditLimit  decimal.Decimal `json:"creditLimit"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"isActive"`
	Notes        string          `json:"notes"`
	AuditFields
}

// Vendor is a party we buy from. Payable is the running amount owed to the
// vendor (positive = payable); it is adjusted only by posted purchase
// transactions and payments recorded against them.
type Vendor struct {
	VendorID string          `json:"vendorID"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Address  Address         `json:"address"`
	Payable  decimal.Decimal `json:"payable"`
	IsActive bool            `json:"isActive"`
	Notes    string          `json:"notes"`
	AuditFields
}
