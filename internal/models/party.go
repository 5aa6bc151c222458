package models

import "github.com/shopspring/decimal"

// Customer mirrors the customers table. Address is flattened into columns.
type Customer struct {
	CustomerID     string          `db:"customer_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	AddressStreet  string          `db:"address_street"`
	AddressCity    string          `db:"address_city"`
	AddressState   string          `db:"address_state"`
	AddressZipCode string          `db:"address_zip_code"`
	AddressCountry string          `db:"address_country"`
	CustomerType   string          `db:"customer_type"`
	CreditLimit    decimal.Decimal `db:"credit_limit"`
	Balance        decimal.Decimal `db:"balance"`
	IsActive       bool            `db:"is_active"`
	Notes          string          `db:"notes"`
	AuditFields
}

// Vendor mirrors the vendors table.
type Vendor struct {
	VendorID       string          `db:"vendor_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	AddressStreet  string          `db:"address_street"`
	AddressCity    string          `db:"address_city"`
	AddressState   string          `db:"address_state"`
	AddressZipCode string          `db:"address_zip_code"`
	AddressCountry string          `db:"address_country"`
	Payable        decimal.Decimal `db:"payable"`
	IsActive       bool            `db:"is_active"`
	Notes          string          `db:"notes"`
	AuditFields
}
