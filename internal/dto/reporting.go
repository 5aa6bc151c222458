package dto

import (
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardOverviewResponse is the headline dashboard payload.
type DashboardOverviewResponse struct {
	TotalSales             decimal.Decimal       `json:"totalSales"`
	MonthlySales           decimal.Decimal       `json:"monthlySales"`
	TotalPurchases         decimal.Decimal       `json:"totalPurchases"`
	TotalProducts          int64                 `json:"totalProducts"`
	LowStockProducts       int64                 `json:"lowStockProducts"`
	TotalCustomers         int64                 `json:"totalCustomers"`
	OutstandingReceivables decimal.Decimal       `json:"outstandingReceivables"`
	TotalVendors           int64                 `json:"totalVendors"`
	OutstandingPayables    decimal.Decimal       `json:"outstandingPayables"`
	RecentTransactions     []TransactionResponse `json:"recentTransactions"`
}

// SalesAnalyticsParams selects the sales analytics bucketing.
type SalesAnalyticsParams struct {
	Period string `form:"period" binding:"omitempty,oneof=week month year"`
}

// SalesBucketResponse is one bucket of the sales analytics series.
type SalesBucketResponse struct {
	Bucket           int             `json:"bucket"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TransactionCount int64           `json:"transactionCount"`
}

// SalesAnalyticsResponse is the bucketed sales series for a period.
type SalesAnalyticsResponse struct {
	Period  string                `json:"period"`
	Buckets []SalesBucketResponse `json:"buckets"`
}

// InventoryReportResponse is the per-category stock valuation.
type InventoryReportResponse struct {
	Categories []CategoryInventoryResponse `json:"categories"`
	TotalValue decimal.Decimal             `json:"totalValue"`
}

// CategoryInventoryResponse summarises one category's stock.
type CategoryInventoryResponse struct {
	Category      string          `json:"category"`
	ProductCount  int64           `json:"productCount"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockCount int64           `json:"lowStockCount"`
}

// FinancialSummaryParams bounds the financial summary date range.
type FinancialSummaryParams struct {
	FromDate *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"toDate" time_format:"2006-01-02"`
}

// SideSummaryResponse aggregates one transaction type in the financial summary.
type SideSummaryResponse struct {
	Total            decimal.Decimal `json:"total"`
	Discount         decimal.Decimal `json:"discount"`
	Tax              decimal.Decimal `json:"tax"`
	Paid             decimal.Decimal `json:"paid"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	TransactionCount int64           `json:"transactionCount"`
}

// FinancialSummaryResponse is the cross-type financial report.
type FinancialSummaryResponse struct {
	From      *time.Time          `json:"from,omitempty"`
	To        *time.Time          `json:"to,omitempty"`
	Sales     SideSummaryResponse `json:"sales"`
	Purchases SideSummaryResponse `json:"purchases"`
	Profit    decimal.Decimal     `json:"profit"`
}

// PartyBalanceResponse is one row of the outstanding balance reports.
type PartyBalanceResponse struct {
	PartyID string          `json:"partyID"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Amount  decimal.Decimal `json:"amount"`
}

// OutstandingBalancesResponse lists parties with non-zero balances and the sum.
type OutstandingBalancesResponse struct {
	Parties []PartyBalanceResponse `json:"parties"`
	Total   decimal.Decimal        `json:"total"`
}

// ToDashboardOverviewResponse converts the domain overview.
func ToDashboardOverviewResponse(o *domain.DashboardOverview) DashboardOverviewResponse {
	return DashboardOverviewResponse{
		TotalSales:             o.TotalSales,
		MonthlySales:           o.MonthlySales,
		TotalPurchases:         o.TotalPurchases,
		TotalProducts:          o.TotalProducts,
		LowStockProducts:       o.LowStockProducts,
		TotalCustomers:         o.TotalCustomers,
		OutstandingReceivables: o.OutstandingReceivables,
		TotalVendors:           o.TotalVendors,
		OutstandingPayables:    o.OutstandingPayables,
		RecentTransactions:     ToTransactionResponses(o.RecentTransactions),
	}
}

// ToSalesAnalyticsResponse converts the bucketed series.
func ToSalesAnalyticsResponse(period domain.SalesAnalyticsPeriod, buckets []domain.SalesBucket) SalesAnalyticsResponse {
	out := make([]SalesBucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = SalesBucketResponse{Bucket: b.Bucket, TotalSales: b.TotalSales, TransactionCount: b.TransactionCount}
	}
	return SalesAnalyticsResponse{Period: string(period), Buckets: out}
}

// ToInventoryReportResponse converts the domain inventory report.
func ToInventoryReportResponse(r *domain.InventoryReport) InventoryReportResponse {
	categories := make([]CategoryInventoryResponse, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = CategoryInventoryResponse{
			Category:      c.Category,
			ProductCount:  c.ProductCount,
			TotalValue:    c.TotalValue,
			LowStockCount: c.LowStockCount,
		}
	}
	return InventoryReportResponse{Categories: categories, TotalValue: r.TotalValue}
}

func toSideSummaryResponse(s domain.SideSummary) SideSummaryResponse {
	return SideSummaryResponse{
		Total:            s.Total,
		Discount:         s.Discount,
		Tax:              s.Tax,
		Paid:             s.Paid,
		Outstanding:      s.Outstanding(),
		TransactionCount: s.TransactionCount,
	}
}

// ToFinancialSummaryResponse converts the domain financial summary.
func ToFinancialSummaryResponse(f *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		From:      f.From,
		To:        f.To,
		Sales:     toSideSummaryResponse(f.Sales),
		Purchases: toSideSummaryResponse(f.Purchases),
		Profit:    f.Profit(),
	}
}

// ToOutstandingBalancesResponse converts party balances and totals them.
func ToOutstandingBalancesResponse(balances []domain.PartyBalance) OutstandingBalancesResponse {
	parties := make([]PartyBalanceResponse, len(balances))
	total := decimal.Zero
	for i, b := range balances {
		parties[i] = PartyBalanceResponse{PartyID: b.PartyID, Name: b.Name, Email: b.Email, Phone: b.Phone, Amount: b.Amount}
		total = total.Add(b.Amount)
	}
	return OutstandingBalancesResponse{Parties: parties, Total: total}
}
