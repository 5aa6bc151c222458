package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportingRepository struct {
	BaseRepository
	transactionRepo portsrepo.TransactionReader
}

func newReportingRepository(pool *pgxpool.Pool, transactionRepo portsrepo.TransactionReader) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		transactionRepo: transactionRepo,
	}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetDashboardOverview aggregates the headline numbers in a handful of
// scalar queries plus one recent-transactions page.
func (r *ReportingRepository) GetDashboardOverview(ctx context.Context, monthStart time.Time, recentLimit int) (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{}

	salesQuery := `
		SELECT COALESCE(SUM(total), 0),
		       COALESCE(SUM(total) FILTER (WHERE transaction_date >= $1), 0)
		FROM transactions
		WHERE txn_type = 'sale' AND status != 'cancelled';
	`
	if err := r.Pool.QueryRow(ctx, salesQuery, monthStart).Scan(&overview.TotalSales, &overview.MonthlySales); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate sales totals", err)
	}

	purchasesQuery := `
		SELECT COALESCE(SUM(total), 0)
		FROM transactions
		WHERE txn_type = 'purchase' AND status != 'cancelled';
	`
	if err := r.Pool.QueryRow(ctx, purchasesQuery).Scan(&overview.TotalPurchases); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate purchase totals", err)
	}

	productsQuery := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE quantity <= min_stock_level)
		FROM products
		WHERE is_active = TRUE;
	`
	if err := r.Pool.QueryRow(ctx, productsQuery).Scan(&overview.TotalProducts, &overview.LowStockProducts); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate product counts", err)
	}

	customersQuery := `
		SELECT COUNT(*), COALESCE(SUM(balance) FILTER (WHERE balance > 0), 0)
		FROM customers
		WHERE is_active = TRUE;
	`
	if err := r.Pool.QueryRow(ctx, customersQuery).Scan(&overview.TotalCustomers, &overview.OutstandingReceivables); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate customer balances", err)
	}

	vendorsQuery := `
		SELECT COUNT(*), COALESCE(SUM(payable) FILTER (WHERE payable > 0), 0)
		FROM vendors
		WHERE is_active = TRUE;
	`
	if err := r.Pool.QueryRow(ctx, vendorsQuery).Scan(&overview.TotalVendors, &overview.OutstandingPayables); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate vendor payables", err)
	}

	recent, _, err := r.transactionRepo.ListTransactions(ctx, domain.TransactionFilter{}, recentLimit, nil)
	if err != nil {
		return nil, err
	}
	overview.RecentTransactions = recent

	return overview, nil
}

// GetSalesAnalytics buckets non-cancelled sales since from. Week buckets by
// day of week, month by day of month, year by month of year.
func (r *ReportingRepository) GetSalesAnalytics(ctx context.Context, from time.Time, period domain.SalesAnalyticsPeriod) ([]domain.SalesBucket, error) {
	var bucketExpr string
	switch period {
	case domain.PeriodWeek:
		bucketExpr = `EXTRACT(DOW FROM transaction_date)::int`
	case domain.PeriodMonth:
		bucketExpr = `EXTRACT(DAY FROM transaction_date)::int`
	case domain.PeriodYear:
		bucketExpr = `EXTRACT(MONTH FROM transaction_date)::int`
	default:
		return nil, apperrors.NewAppError(400, "unknown analytics period "+string(period), apperrors.ErrValidation)
	}

	query := `
		SELECT ` + bucketExpr + ` AS bucket, COALESCE(SUM(total), 0), COUNT(*)
		FROM transactions
		WHERE txn_type = 'sale' AND status != 'cancelled' AND transaction_date >= $1
		GROUP BY bucket
		ORDER BY bucket;
	`
	rows, err := r.Pool.Query(ctx, query, from)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales analytics for period "+string(period), err)
	}
	defer rows.Close()

	buckets := []domain.SalesBucket{}
	for rows.Next() {
		var b domain.SalesBucket
		if err := rows.Scan(&b.Bucket, &b.TotalSales, &b.TransactionCount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sales analytics row", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sales analytics rows", err)
	}
	return buckets, nil
}

// GetInventoryReport values active stock per category at sale price.
func (r *ReportingRepository) GetInventoryReport(ctx context.Context) (*domain.InventoryReport, error) {
	query := `
		SELECT category,
		       COUNT(*),
		       COALESCE(SUM(quantity * price), 0),
		       COUNT(*) FILTER (WHERE quantity <= min_stock_level)
		FROM products
		WHERE is_active = TRUE
		GROUP BY category
		ORDER BY category;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query inventory report", err)
	}
	defer rows.Close()

	report := &domain.InventoryReport{Categories: []domain.CategoryInventory{}}
	for rows.Next() {
		var c domain.CategoryInventory
		if err := rows.Scan(&c.Category, &c.ProductCount, &c.TotalValue, &c.LowStockCount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan inventory report row", err)
		}
		report.Categories = append(report.Categories, c)
		report.TotalValue = report.TotalValue.Add(c.TotalValue)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating inventory report rows", err)
	}
	return report, nil
}

// GetFinancialSummary aggregates both transaction types over an optional range.
func (r *ReportingRepository) GetFinancialSummary(ctx context.Context, from *time.Time, to *time.Time) (*domain.FinancialSummary, error) {
	query := `
		SELECT txn_type,
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(discount_amount), 0),
		       COALESCE(SUM(tax_amount), 0),
		       COALESCE(SUM(paid_amount), 0),
		       COUNT(*)
		FROM transactions
		WHERE status != 'cancelled'
	`
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		query += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}
	query += ` GROUP BY txn_type;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query financial summary", err)
	}
	defer rows.Close()

	summary := &domain.FinancialSummary{From: from, To: to}
	for rows.Next() {
		var txnType string
		var side domain.SideSummary
		if err := rows.Scan(&txnType, &side.Total, &side.Discount, &side.Tax, &side.Paid, &side.TransactionCount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial summary row", err)
		}
		switch txnType {
		case string(domain.Sale):
			summary.Sales = side
		case string(domain.Purchase):
			summary.Purchases = side
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating financial summary rows", err)
	}
	return summary, nil
}

// GetOutstandingReceivables lists active customers carrying a balance.
func (r *ReportingRepository) GetOutstandingReceivables(ctx context.Context) ([]domain.PartyBalance, error) {
	query := `
		SELECT customer_id, name, email, phone, balance
		FROM customers
		WHERE is_active = TRUE AND balance > 0
		ORDER BY balance DESC;
	`
	return r.queryPartyBalances(ctx, query, "failed to query outstanding receivables")
}

// GetOutstandingPayables lists active vendors owed money.
func (r *ReportingRepository) GetOutstandingPayables(ctx context.Context) ([]domain.PartyBalance, error) {
	query := `
		SELECT vendor_id, name, email, phone, payable
		FROM vendors
		WHERE is_active = TRUE AND payable > 0
		ORDER BY payable DESC;
	`
	return r.queryPartyBalances(ctx, query, "failed to query outstanding payables")
}

func (r *ReportingRepository) queryPartyBalances(ctx context.Context, query string, errMsg string) ([]domain.PartyBalance, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, errMsg, err)
	}
	defer rows.Close()

	balances := []domain.PartyBalance{}
	for rows.Next() {
		var b domain.PartyBalance
		if err := rows.Scan(&b.PartyID, &b.Name, &b.Email, &b.Phone, &b.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party balance rows", err)
	}
	return balances, nil
}
