package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverview aggregates the headline numbers for the dashboard.
type DashboardOverview struct {
	TotalSales             decimal.Decimal `json:"totalSales"`
	MonthlySales           decimal.Decimal `json:"monthlySales"`
	TotalPurchases         decimal.Decimal `json:"totalPurchases"`
	TotalProducts          int64           `json:"totalProducts"`
	LowStockProducts       int64           `json:"lowStockProducts"`
	TotalCustomers         int64           `json:"totalCustomers"`
	OutstandingReceivables decimal.Decimal `json:"outstandingReceivables"`
	TotalVendors           int64           `json:"totalVendors"`
	OutstandingPayables    decimal.Decimal `json:"outstandingPayables"`
	RecentTransactions     []Transaction   `json:"recentTransactions"`
}

// SalesAnalyticsPeriod selects the bucketing for sales analytics.
type SalesAnalyticsPeriod string

const (
	PeriodWeek  SalesAnalyticsPeriod = "week"
	PeriodMonth SalesAnalyticsPeriod = "month"
	PeriodYear  SalesAnalyticsPeriod = "year"
)

// SalesBucket is one time bucket of the sales analytics series.
type SalesBucket struct {
	Bucket           int             `json:"bucket"` // day-of-week, day-of-month or month, per period
	TotalSales       decimal.Decimal `json:"totalSales"`
	TransactionCount int64           `json:"transactionCount"`
}

// CategoryInventory summarises stock value for one product category.
type CategoryInventory struct {
	Category      string          `json:"category"`
	ProductCount  int64           `json:"productCount"`
	TotalValue    decimal.Decimal `json:"totalValue"` // sum(quantity * price)
	LowStockCount int64           `json:"lowStockCount"`
}

// InventoryReport is the per-category stock valuation.
type InventoryReport struct {
	Categories []CategoryInventory `json:"categories"`
	TotalValue decimal.Decimal     `json:"totalValue"`
}

// SideSummary aggregates one side (sale or purchase) of the financial summary.
type SideSummary struct {
	Total            decimal.Decimal `json:"total"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Paid             decimal.Decimal `json:"paid"`
	TransactionCount int64           `json:"transactionCount"`
}

// Outstanding is the unpaid portion of the side.
func (s SideSummary) Outstanding() decimal.Decimal {
	return s.Total.Sub(s.Paid)
}

// FinancialSummary is the cross-type financial report over a date range.
type FinancialSummary struct {
	From      *time.Time  `json:"from,omitempty"`
	To        *time.Time  `json:"to,omitempty"`
	Sales     SideSummary `json:"sales"`
	Purchases SideSummary `json:"purchases"`
}

// Profit is sales total minus purchase total for the covered range.
func (f FinancialSummary) Profit() decimal.Decimal {
	return f.Sales.Total.Sub(f.Purchases.Total)
}

// PartyBalance is one row of the outstanding receivables / payables reports.
type PartyBalance struct {
	PartyID string          `json:"partyID"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Amount  decimal.Decimal `json:"amount"`
}
