package services

import (
	"context"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
)

const recentTransactionsLimit = 10

// reportingService assembles the dashboard and report payloads.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetDashboardOverview aggregates the headline dashboard numbers.
func (s *reportingService) GetDashboardOverview(ctx context.Context) (*dto.DashboardOverviewResponse, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	overview, err := s.reportingRepo.GetDashboardOverview(ctx, monthStart, recentTransactionsLimit)
	if err != nil {
		s.LogError(ctx, err, "failed to build dashboard overview")
		return nil, err
	}
	resp := dto.ToDashboardOverviewResponse(overview)
	return &resp, nil
}

// GetSalesAnalytics buckets recent sales by the requested period. Week covers
// the trailing 7 days, month the trailing 30, year the trailing 12 months.
func (s *reportingService) GetSalesAnalytics(ctx context.Context, period domain.SalesAnalyticsPeriod) (*dto.SalesAnalyticsResponse, error) {
	if period == "" {
		period = domain.PeriodMonth
	}

	now := time.Now().UTC()
	var from time.Time
	switch period {
	case domain.PeriodWeek:
		from = now.AddDate(0, 0, -7)
	case domain.PeriodYear:
		from = now.AddDate(-1, 0, 0)
	default:
		from = now.AddDate(0, 0, -30)
	}

	buckets, err := s.reportingRepo.GetSalesAnalytics(ctx, from, period)
	if err != nil {
		s.LogError(ctx, err, "failed to build sales analytics")
		return nil, err
	}
	resp := dto.ToSalesAnalyticsResponse(period, buckets)
	return &resp, nil
}

// GetInventoryReport values current stock per category.
func (s *reportingService) GetInventoryReport(ctx context.Context) (*dto.InventoryReportResponse, error) {
	report, err := s.reportingRepo.GetInventoryReport(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to build inventory report")
		return nil, err
	}
	resp := dto.ToInventoryReportResponse(report)
	return &resp, nil
}

// GetFinancialSummary aggregates sales and purchases over a date range.
func (s *reportingService) GetFinancialSummary(ctx context.Context, params dto.FinancialSummaryParams) (*dto.FinancialSummaryResponse, error) {
	summary, err := s.reportingRepo.GetFinancialSummary(ctx, params.FromDate, params.ToDate)
	if err != nil {
		s.LogError(ctx, err, "failed to build financial summary")
		return nil, err
	}
	resp := dto.ToFinancialSummaryResponse(summary)
	return &resp, nil
}

// GetOutstandingReceivables lists customers owing money.
func (s *reportingService) GetOutstandingReceivables(ctx context.Context) (*dto.OutstandingBalancesResponse, error) {
	balances, err := s.reportingRepo.GetOutstandingReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list outstanding receivables")
		return nil, err
	}
	resp := dto.ToOutstandingBalancesResponse(balances)
	return &resp, nil
}

// GetOutstandingPayables lists vendors owed money.
func (s *reportingService) GetOutstandingPayables(ctx context.Context) (*dto.OutstandingBalancesResponse, error) {
	balances, err := s.reportingRepo.GetOutstandingPayables(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list outstanding payables")
		return nil, err
	}
	resp := dto.ToOutstandingBalancesResponse(balances)
	return &resp, nil
}
