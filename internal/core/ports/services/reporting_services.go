package services

import (
	"context"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

// ReportingSvc defines the dashboard and report operations.
type ReportingSvc interface {
	// GetDashboardOverview aggregates the headline dashboard numbers.
	GetDashboardOverview(ctx context.Context) (*dto.DashboardOverviewResponse, error)

	// GetSalesAnalytics buckets recent sales by the requested period.
	GetSalesAnalytics(ctx context.Context, period domain.SalesAnalyticsPeriod) (*dto.SalesAnalyticsResponse, error)

	// GetInventoryReport values current stock per category.
	GetInventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error)

	// GetFinancialSummary aggregates sales and purchases over a date range.
	GetFinancialSummary(ctx context.Context, params dto.FinancialSummaryParams) (*dto.FinancialSummaryResponse, error)

	// GetOutstandingReceivables lists customers owing money.
	GetOutstandingReceivables(ctx context.Context) (*dto.OutstandingBalancesResponse, error)

	// GetOutstandingPayables lists vendors owed money.
	GetOutstandingPayables(ctx context.Context) (*dto.OutstandingBalancesResponse, error)
}
