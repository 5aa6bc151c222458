package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/utils/billing"
)

var (
	// Inactive-entity sentinels wrap ErrValidation so handlers map them to 400.
	ErrInactiveParty     = fmt.Errorf("%w: party is inactive", apperrors.ErrValidation)
	ErrInactiveProduct   = fmt.Errorf("%w: product is inactive", apperrors.ErrValidation)
	ErrPercentOutOfRange = errors.New("discount and tax percent must be between 0 and 100")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// transactionService posts sales and purchases, records payments and manages
// transaction status.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	productRepo     portsrepo.ProductRepositoryFacade
	customerRepo    portsrepo.CustomerRepositoryFacade
	vendorRepo      portsrepo.VendorRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	vendorRepo portsrepo.VendorRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		vendorRepo:      vendorRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func percentInRange(p decimal.Decimal) bool {
	hundred := decimal.NewFromInt(100)
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

// resolveParty verifies the type/party pairing and that the referenced
// customer or vendor exists and is active. The binding layer enforces the
// pairing too, but callers other than the HTTP handler get no binding pass.
func (s *transactionService) resolveParty(ctx context.Context, txnType domain.TransactionType, customerID, vendorID *string) error {
	switch txnType {
	case domain.Sale:
		if customerID == nil || vendorID != nil {
			return fmt.Errorf("%w: a sale requires a customer and no vendor", apperrors.ErrValidation)
		}
		customer, err := s.customerRepo.FindCustomerByID(ctx, *customerID)
		if err != nil {
			return err
		}
		if !customer.IsActive {
			return fmt.Errorf("%w: customer %s", ErrInactiveParty, *customerID)
		}
	case domain.Purchase:
		if vendorID == nil || customerID != nil {
			return fmt.Errorf("%w: a purchase requires a vendor and no customer", apperrors.ErrValidation)
		}
		vendor, err := s.vendorRepo.FindVendorByID(ctx, *vendorID)
		if err != nil {
			return err
		}
		if !vendor.IsActive {
			return fmt.Errorf("%w: vendor %s", ErrInactiveParty, *vendorID)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txnType)
	}
	return nil
}

// CreateTransaction validates the request, snapshots prices, computes totals
// and delegates to the repository for the atomic post.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)

	if !percentInRange(req.DiscountPercent) || !percentInRange(req.TaxPercent) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPercentOutOfRange)
	}
	if err := s.resolveParty(ctx, txnType, req.CustomerID, req.VendorID); err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		if !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: quantity for product %s must be positive", apperrors.ErrValidation, item.ProductID)
		}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	// Snapshot unit prices and pre-check stock on the fetched state. The
	// repository re-checks under row locks, so this only exists to fail fast.
	items := make([]domain.TransactionItem, len(req.Items))
	lineTotals := make([]decimal.Decimal, len(req.Items))
	stockDeltas := make(map[string]decimal.Decimal, len(req.Items))
	for i, item := range req.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, apperrors.NewNotFoundError("product " + item.ProductID + " not found")
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: product %s", ErrInactiveProduct, item.ProductID)
		}

		unitPrice := product.Price
		delta := item.Quantity.Neg()
		if txnType == domain.Purchase {
			unitPrice = product.CostPrice
			delta = item.Quantity
		}
		stockDeltas[item.ProductID] = stockDeltas[item.ProductID].Add(delta)
		if txnType == domain.Sale && product.Quantity.Add(stockDeltas[item.ProductID]).IsNegative() {
			return nil, apperrors.ErrInsufficientStock
		}

		lineTotal := billing.LineTotal(item.Quantity, unitPrice)
		items[i] = domain.TransactionItem{
			ItemID:    uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		}
		lineTotals[i] = lineTotal
	}

	totals := billing.ComputeTotals(lineTotals, req.DiscountPercent, req.TaxPercent)

	now := time.Now().UTC()
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = req.TransactionDate.UTC()
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		CustomerID:      req.CustomerID,
		VendorID:        req.VendorID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TaxPercent:      req.TaxPercent,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		PaidAmount:      decimal.Zero,
		Status:          domain.StatusPending,
		Payments:        []domain.Payment{},
		Notes:           req.Notes,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, &txn, stockDeltas); err != nil {
		s.LogError(ctx, err, "failed to post transaction", slog.String("type", req.Type))
		return nil, err
	}

	s.LogInfo(ctx, "transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_number", txn.TransactionNumber),
		slog.String("type", string(txn.Type)),
		slog.String("total", txn.Total.String()))
	return &txn, nil
}

// GetTransactionByID retrieves a transaction with items and payments.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves a paginated, filtered list of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := domain.TransactionFilter{
		Type:       domain.TransactionType(params.Type),
		Status:     domain.TransactionStatus(params.Status),
		CustomerID: params.CustomerID,
		VendorID:   params.VendorID,
		FromDate:   params.FromDate,
		ToDate:     params.ToDate,
	}
	transactions, nextToken, err := s.transactionRepo.ListTransactions(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

// RecordPayment validates and appends a payment against a transaction.
func (s *transactionService) RecordPayment(ctx context.Context, transactionID string, req dto.RecordPaymentRequest, requestingUserID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositiveAmount)
	}

	// Fail fast on a fetched snapshot; the repository re-checks under the
	// transaction row lock.
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: transaction %s is cancelled", apperrors.ErrConflict, transactionID)
	}
	if txn.PaidAmount.Add(req.Amount).GreaterThan(txn.Total) {
		return nil, apperrors.ErrOverPayment
	}

	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		Amount:    req.Amount,
		Method:    domain.PaymentMethod(req.Method),
		Reference: req.Reference,
		PaidAt:    time.Now().UTC(),
	}

	updated, err := s.transactionRepo.RecordPayment(ctx, transactionID, payment, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to record payment", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "payment recorded",
		slog.String("transaction_id", transactionID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// UpdateTransactionStatus moves a transaction to an explicit status.
// Cancelled is terminal.
func (s *transactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, req dto.UpdateTransactionStatusRequest, requestingUserID string) (*domain.Transaction, error) {
	status := domain.TransactionStatus(req.Status)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: transaction %s is cancelled", apperrors.ErrConflict, transactionID)
	}
	if txn.Status == status {
		return txn, nil
	}

	if err := s.transactionRepo.UpdateTransactionStatus(ctx, transactionID, status, requestingUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to update transaction status", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "transaction status updated",
		slog.String("transaction_id", transactionID),
		slog.String("from", string(txn.Status)),
		slog.String("to", string(status)))
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}
