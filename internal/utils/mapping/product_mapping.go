package mapping

import (
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		Category:      d.Category,
		Unit:          d.Unit,
		Price:         d.Price,
		CostPrice:     d.CostPrice,
		Quantity:      d.Quantity,
		MinStockLevel: d.MinStockLevel,
		Supplier:      d.Supplier,
		Barcode:       d.Barcode,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		Category:      m.Category,
		Unit:          m.Unit,
		Price:         m.Price,
		CostPrice:     m.CostPrice,
		Quantity:      m.Quantity,
		MinStockLevel: m.MinStockLevel,
		Supplier:      m.Supplier,
		Barcode:       m.Barcode,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
