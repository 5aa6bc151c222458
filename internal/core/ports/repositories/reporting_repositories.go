package repositories

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
)

// ReportingRepository defines the aggregation queries behind the dashboard
// and report endpoints. All methods are read-only.
type ReportingRepository interface {
	// GetDashboardOverview aggregates the headline numbers. monthStart bounds
	// the "this month" sales figure and recentLimit caps the recent list.
	GetDashboardOverview(ctx context.Context, monthStart time.Time, recentLimit int) (*domain.DashboardOverview, error)

	// GetSalesAnalytics buckets non-cancelled sales since from by the period's
	// natural unit (day of week, day of month, month of year).
	GetSalesAnalytics(ctx context.Context, from time.Time, period domain.SalesAnalyticsPeriod) ([]domain.SalesBucket, error)

	// GetInventoryReport values active products' stock per category.
	GetInventoryReport(ctx context.Context) (*domain.InventoryReport, error)

	// GetFinancialSummary aggregates totals, discounts, taxes and payments per
	// transaction type over an optional date range.
	GetFinancialSummary(ctx context.Context, from *time.Time, to *time.Time) (*domain.FinancialSummary, error)

	// GetOutstandingReceivables lists customers with a positive balance.
	GetOutstandingReceivables(ctx context.Context) ([]domain.PartyBalance, error)

	// GetOutstandingPayables lists vendors with a positive payable.
	GetOutstandingPayables(ctx context.Context) ([]domain.PartyBalance, error)
}
