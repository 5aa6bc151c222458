package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	"github.com/bizledger/inventory_billing_app/internal/models"
	"github.com/bizledger/inventory_billing_app/internal/utils/billing"
	"github.com/bizledger/inventory_billing_app/internal/utils/mapping"
	"github.com/bizledger/inventory_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `
	transaction_id, transaction_number, txn_type, customer_id, vendor_id,
	subtotal, discount_percent, discount_amount, tax_percent, tax_amount,
	total, paid_amount, status, notes, transaction_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionNumber,
		&m.Type,
		&m.CustomerID,
		&m.VendorID,
		&m.Subtotal,
		&m.DiscountPercent,
		&m.DiscountAmount,
		&m.TaxPercent,
		&m.TaxAmount,
		&m.Total,
		&m.PaidAmount,
		&m.Status,
		&m.Notes,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransaction posts a transaction atomically: product rows are locked and
// re-checked, the sequential number is allocated from the counters table, the
// transaction and its items are inserted, stock deltas applied and the party
// balance moved. Everything happens inside one database transaction so a
// failure at any step leaves no partial state behind.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the affected product rows and re-check stock under the lock.
	// The pre-check in the service works on an unlocked snapshot; this one is
	// authoritative.
	productIDs := make([]string, 0, len(stockDeltas))
	for id := range stockDeltas {
		productIDs = append(productIDs, id)
	}
	lockQuery := `SELECT product_id, quantity FROM products WHERE product_id = ANY($1) AND is_active = TRUE FOR UPDATE;`
	rows, err := tx.Query(ctx, lockQuery, productIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock products for posting", err)
	}
	lockedQuantities := make(map[string]decimal.Decimal, len(productIDs))
	for rows.Next() {
		var id string
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan locked product row", err)
		}
		lockedQuantities[id] = qty
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating locked product rows", err)
	}
	for id, delta := range stockDeltas {
		qty, ok := lockedQuantities[id]
		if !ok {
			return apperrors.NewNotFoundError("product " + id + " not found or inactive")
		}
		if qty.Add(delta).IsNegative() {
			return apperrors.ErrInsufficientStock
		}
	}

	// 2. Allocate the sequential number for this type and period. The upsert
	// keeps the counter row locked until commit, so concurrent posters of the
	// same period serialize here and never share a sequence value.
	period := billing.PeriodKey(txn.TransactionDate)
	var seq int64
	counterQuery := `
		INSERT INTO transaction_counters (txn_type, period, seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (txn_type, period)
		DO UPDATE SET seq = transaction_counters.seq + 1
		RETURNING seq;
	`
	if err := tx.QueryRow(ctx, counterQuery, string(txn.Type), period).Scan(&seq); err != nil {
		return apperrors.NewAppError(500, "failed to allocate transaction number", err)
	}
	txn.TransactionNumber = billing.FormatTransactionNumber(txn.Type, txn.TransactionDate, seq)

	// 3. Insert the transaction row.
	m := mapping.ToModelTransaction(*txn)
	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID, m.TransactionNumber, m.Type, m.CustomerID, m.VendorID,
		m.Subtotal, m.DiscountPercent, m.DiscountAmount, m.TaxPercent, m.TaxAmount,
		m.Total, m.PaidAmount, m.Status, m.Notes, m.TransactionDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	// 4. Insert item rows and apply stock deltas in one batch.
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO transaction_items (item_id, transaction_id, product_id, quantity, unit_price, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, item := range txn.Items {
		mi := mapping.ToModelTransactionItem(item, txn.TransactionID, i)
		batch.Queue(itemQuery, mi.ItemID, mi.TransactionID, mi.ProductID, mi.Quantity, mi.UnitPrice, mi.LineTotal, mi.Position)
	}
	stockQuery := `
		UPDATE products
		SET quantity = quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1;
	`
	for id, delta := range stockDeltas {
		batch.Queue(stockQuery, id, delta, txn.LastUpdatedAt, txn.LastUpdatedBy)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute posting batch for transaction "+m.TransactionID, err)
	}

	// 5. Move the party balance by the transaction total.
	if err := r.applyPartyBalanceDelta(ctx, tx, txn.Type, txn.CustomerID, txn.VendorID, txn.Total, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// applyPartyBalanceDelta shifts the customer balance or vendor payable. The
// UPDATE itself takes the row lock.
func (r *PgxTransactionRepository) applyPartyBalanceDelta(ctx context.Context, tx pgx.Tx, txnType domain.TransactionType, customerID, vendorID *string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	switch txnType {
	case domain.Sale:
		if customerID == nil {
			return apperrors.NewAppError(500, "sale transaction missing customer", nil)
		}
		query := `
			UPDATE customers
			SET balance = balance + $2,
			    last_updated_at = $3,
			    last_updated_by = $4
			WHERE customer_id = $1;
		`
		cmdTag, err := tx.Exec(ctx, query, *customerID, delta, updatedAt, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update customer balance", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("customer " + *customerID + " not found for balance update")
		}
	case domain.Purchase:
		if vendorID == nil {
			return apperrors.NewAppError(500, "purchase transaction missing vendor", nil)
		}
		query := `
			UPDATE vendors
			SET payable = payable + $2,
			    last_updated_at = $3,
			    last_updated_by = $4
			WHERE vendor_id = $1;
		`
		cmdTag, err := tx.Exec(ctx, query, *vendorID, delta, updatedAt, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update vendor payable", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("vendor " + *vendorID + " not found for balance update")
		}
	}
	return nil
}

// RecordPayment appends a payment under a row lock on the transaction, then
// re-derives the status and reduces the party balance in the same database
// transaction.
func (r *PgxTransactionRepository) RecordPayment(ctx context.Context, transactionID string, payment domain.Payment, recordedBy string) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, lockQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}

	if m.Status == string(domain.StatusCancelled) {
		return nil, apperrors.NewAppError(409, "cannot record payment on cancelled transaction", apperrors.ErrConflict)
	}
	newPaid := m.PaidAmount.Add(payment.Amount)
	if newPaid.GreaterThan(m.Total) {
		return nil, apperrors.ErrOverPayment
	}

	insertQuery := `
		INSERT INTO transaction_payments (payment_id, transaction_id, amount, method, reference, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	mp := mapping.ToModelPayment(payment, transactionID)
	if _, err := tx.Exec(ctx, insertQuery, mp.PaymentID, mp.TransactionID, mp.Amount, mp.Method, mp.Reference, mp.PaidAt); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment for transaction "+transactionID, err)
	}

	newStatus := domain.PaymentStatusFor(newPaid, m.Total)
	updateQuery := `
		UPDATE transactions
		SET paid_amount = $2,
		    status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, transactionID, newPaid, string(newStatus), payment.PaidAt, recordedBy); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update paid amount for transaction "+transactionID, err)
	}

	// A payment settles part of the receivable/payable, so the balance moves
	// in the opposite direction of posting.
	if err := r.applyPartyBalanceDelta(ctx, tx, domain.TransactionType(m.Type), m.CustomerID, m.VendorID, payment.Amount.Neg(), recordedBy, payment.PaidAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return r.FindTransactionByID(ctx, transactionID)
}

// UpdateTransactionStatus sets an explicit status. Cancelled is terminal.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE transaction_id = $1 AND status != 'cancelled';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already cancelled; look to tell them apart.
		if _, findErr := r.FindTransactionByID(ctx, transactionID); findErr != nil {
			return findErr
		}
		return apperrors.NewAppError(409, "transaction "+transactionID+" is cancelled and cannot change status", apperrors.ErrConflict)
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its items and payments.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	itemsMap, err := r.findItemsByTransactionIDs(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	paymentsMap, err := r.findPaymentsByTransactionIDs(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainTransaction(*m)
	d.Items = itemsMap[transactionID]
	d.Payments = paymentsMap[transactionID]
	return &d, nil
}

// ListTransactions retrieves a paginated, filtered list of transactions with
// their items and payments attached.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions`
	filterClause := ` WHERE 1=1`
	args := []interface{}{}

	if filter.Type != "" {
		args = append(args, string(filter.Type))
		filterClause += ` AND txn_type = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		filterClause += ` AND customer_id = $` + strconv.Itoa(len(args))
	}
	if filter.VendorID != nil {
		args = append(args, *filter.VendorID)
		filterClause += ` AND vendor_id = $` + strconv.Itoa(len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		filterClause += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		filterClause += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	orderByClause := ` ORDER BY transaction_date DESC, created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (transaction_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	ids := make([]string, len(results))
	for i, m := range results {
		ids[i] = m.TransactionID
	}
	itemsMap, err := r.findItemsByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	paymentsMap, err := r.findPaymentsByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	domainTxns := make([]domain.Transaction, len(results))
	for i, m := range results {
		d := mapping.ToDomainTransaction(m)
		d.Items = itemsMap[m.TransactionID]
		d.Payments = paymentsMap[m.TransactionID]
		domainTxns[i] = d
	}
	return domainTxns, nextTokenVal, nil
}

// findItemsByTransactionIDs loads item lines for a set of transactions,
// grouped by transaction ID and ordered by line position.
func (r *PgxTransactionRepository) findItemsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.TransactionItem, error) {
	result := make(map[string][]domain.TransactionItem, len(transactionIDs))
	for _, id := range transactionIDs {
		result[id] = []domain.TransactionItem{}
	}
	if len(transactionIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT item_id, transaction_id, product_id, quantity, unit_price, line_total, position
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TransactionItem
		if err := rows.Scan(&m.ItemID, &m.TransactionID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.LineTotal, &m.Position); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction item row", err)
		}
		result[m.TransactionID] = append(result[m.TransactionID], mapping.ToDomainTransactionItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction item rows", err)
	}
	return result, nil
}

// findPaymentsByTransactionIDs loads payments for a set of transactions,
// grouped by transaction ID in recording order.
func (r *PgxTransactionRepository) findPaymentsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.Payment, error) {
	result := make(map[string][]domain.Payment, len(transactionIDs))
	for _, id := range transactionIDs {
		result[id] = []domain.Payment{}
	}
	if len(transactionIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT payment_id, transaction_id, amount, method, reference, paid_at
		FROM transaction_payments
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, paid_at;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.TransactionID, &m.Amount, &m.Method, &m.Reference, &m.PaidAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		result[m.TransactionID] = append(result[m.TransactionID], mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return result, nil
}
