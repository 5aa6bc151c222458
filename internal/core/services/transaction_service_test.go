package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/core/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, stockDeltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) RecordPayment(ctx context.Context, transactionID string, payment domain.Payment, recordedBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, payment, recordedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, limit int, nextToken *string) ([]domain.Product, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Product), nil, args.Error(2)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ApplyStockDelta(ctx context.Context, productID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error) {
	args := m.Called(ctx, productID, delta, updatedBy, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) SetStockQuantity(ctx context.Context, productID string, quantity decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error) {
	args := m.Called(ctx, productID, quantity, updatedBy, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DeactivateProduct(ctx context.Context, productID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, productID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Customer), nil, args.Error(2)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, customerID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock VendorRepository ---
type MockVendorRepository struct {
	mock.Mock
}

var _ portsrepo.VendorRepositoryFacade = (*MockVendorRepository)(nil)

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Vendor, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Vendor), nil, args.Error(2)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeactivateVendor(ctx context.Context, vendorID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, vendorID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockProductRepo  *MockProductRepository
	mockCustomerRepo *MockCustomerRepository
	mockVendorRepo   *MockVendorRepository
	service          portssvc.TransactionSvcFacade
	ctx              context.Context
	userID           string
	customerID       string
	vendorID         string
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockProductRepo = new(MockProductRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockVendorRepo = new(MockVendorRepository)
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockProductRepo, s.mockCustomerRepo, s.mockVendorRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.customerID = uuid.NewString()
	s.vendorID = uuid.NewString()
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) activeCustomer() *domain.Customer {
	return &domain.Customer{
		CustomerID:   s.customerID,
		Name:         "Acme Retail",
		CustomerType: domain.CustomerIndividual,
		IsActive:     true,
	}
}

func (s *TransactionServiceTestSuite) activeVendor() *domain.Vendor {
	return &domain.Vendor{
		VendorID: s.vendorID,
		Name:     "Supply Co",
		IsActive: true,
	}
}

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func (s *TransactionServiceTestSuite) TestCreateSale_ComputesTotalsAndStockDeltas() {
	widgetID := uuid.NewString()
	gadgetID := uuid.NewString()

	products := map[string]domain.Product{
		widgetID: {ProductID: widgetID, Price: dec("50"), CostPrice: dec("30"), Quantity: dec("10"), IsActive: true},
		gadgetID: {ProductID: gadgetID, Price: dec("150"), CostPrice: dec("90"), Quantity: dec("5"), IsActive: true},
	}

	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, s.customerID).Return(s.activeCustomer(), nil)
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.Anything).Return(products, nil)

	var savedTxn *domain.Transaction
	var savedDeltas map[string]decimal.Decimal
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("*domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedTxn = args.Get(1).(*domain.Transaction)
			savedDeltas = args.Get(2).(map[string]decimal.Decimal)
			savedTxn.TransactionNumber = "INV26090001"
		}).
		Return(nil)

	req := dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &s.customerID,
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: widgetID, Quantity: dec("3")},
			{ProductID: gadgetID, Quantity: dec("1")},
		},
		DiscountPercent: dec("10"),
		TaxPercent:      dec("5"),
	}

	txn, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.Equal("INV26090001", txn.TransactionNumber)
	s.Equal(domain.StatusPending, txn.Status)
	s.True(txn.Subtotal.Equal(dec("300")), "subtotal was %s", txn.Subtotal)
	s.True(txn.DiscountAmount.Equal(dec("30")), "discount was %s", txn.DiscountAmount)
	s.True(txn.TaxAmount.Equal(dec("13.50")), "tax was %s", txn.TaxAmount)
	s.True(txn.Total.Equal(dec("283.50")), "total was %s", txn.Total)
	s.True(txn.PaidAmount.IsZero())

	// Unit prices snapshot the sale price, not cost.
	s.Require().Len(savedTxn.Items, 2)
	s.True(savedTxn.Items[0].UnitPrice.Equal(dec("50")))
	s.True(savedTxn.Items[1].UnitPrice.Equal(dec("150")))

	// Sales push stock down.
	s.Require().NotNil(savedDeltas)
	s.True(savedDeltas[widgetID].Equal(dec("-3")))
	s.True(savedDeltas[gadgetID].Equal(dec("-1")))
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestCreatePurchase_SnapshotsCostPriceAndRaisesStock() {
	productID := uuid.NewString()
	products := map[string]domain.Product{
		productID: {ProductID: productID, Price: dec("50"), CostPrice: dec("30"), Quantity: dec("0"), IsActive: true},
	}

	s.mockVendorRepo.On("FindVendorByID", s.ctx, s.vendorID).Return(s.activeVendor(), nil)
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.Anything).Return(products, nil)

	var savedDeltas map[string]decimal.Decimal
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("*domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			savedDeltas = args.Get(2).(map[string]decimal.Decimal)
		}).
		Return(nil)

	req := dto.CreateTransactionRequest{
		Type:     "purchase",
		VendorID: &s.vendorID,
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: productID, Quantity: dec("4")},
		},
	}

	txn, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(txn.Items[0].UnitPrice.Equal(dec("30")), "purchase should snapshot cost price")
	s.True(txn.Total.Equal(dec("120.00")), "total was %s", txn.Total)
	s.True(savedDeltas[productID].Equal(dec("4")), "purchase should raise stock")
}

func (s *TransactionServiceTestSuite) TestCreateSale_InsufficientStockLeavesNothingSaved() {
	productID := uuid.NewString()
	products := map[string]domain.Product{
		productID: {ProductID: productID, Price: dec("50"), Quantity: dec("1"), IsActive: true},
	}

	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, s.customerID).Return(s.activeCustomer(), nil)
	s.mockProductRepo.On("FindProductsByIDs", s.ctx, mock.Anything).Return(products, nil)

	req := dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &s.customerID,
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: productID, Quantity: dec("2")},
		},
	}

	txn, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.Nil(txn)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateSale_InactiveCustomerRejected() {
	inactive := s.activeCustomer()
	inactive.IsActive = false
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, s.customerID).Return(inactive, nil)

	req := dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &s.customerID,
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: uuid.NewString(), Quantity: dec("1")},
		},
	}

	_, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, services.ErrInactiveParty)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PartyPairingEnforced() {
	items := []dto.CreateTransactionItemRequest{
		{ProductID: uuid.NewString(), Quantity: dec("1")},
	}

	// A sale must name a customer and no vendor.
	_, err := s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type:  "sale",
		Items: items,
	}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &s.customerID,
		VendorID:   &s.vendorID,
		Items:      items,
	}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)

	// A purchase must name a vendor and no customer.
	_, err = s.service.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		Type:       "purchase",
		CustomerID: &s.customerID,
		Items:      items,
	}, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.mockCustomerRepo.AssertNotCalled(s.T(), "FindCustomerByID", mock.Anything, mock.Anything)
	s.mockVendorRepo.AssertNotCalled(s.T(), "FindVendorByID", mock.Anything, mock.Anything)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_PercentOutOfRange() {
	req := dto.CreateTransactionRequest{
		Type:            "sale",
		CustomerID:      &s.customerID,
		DiscountPercent: dec("101"),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: uuid.NewString(), Quantity: dec("1")},
		},
	}

	_, err := s.service.CreateTransaction(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) pendingTransaction(total, paid string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Sale,
		CustomerID:    &s.customerID,
		Total:         dec(total),
		PaidAmount:    dec(paid),
		Status:        domain.PaymentStatusFor(dec(paid), dec(total)),
	}
}

func (s *TransactionServiceTestSuite) TestRecordPayment_PartialThenPaid() {
	txn := s.pendingTransaction("100", "0")
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil)

	updated := *txn
	updated.PaidAmount = dec("40")
	updated.Status = domain.StatusPartial
	s.mockTxnRepo.On("RecordPayment", s.ctx, txn.TransactionID, mock.AnythingOfType("domain.Payment"), s.userID).
		Return(&updated, nil)

	got, err := s.service.RecordPayment(s.ctx, txn.TransactionID, dto.RecordPaymentRequest{Amount: dec("40"), Method: "cash"}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusPartial, got.Status)
	s.True(got.BalanceDue().Equal(dec("60")))
}

func (s *TransactionServiceTestSuite) TestRecordPayment_OverpaymentRejected() {
	txn := s.pendingTransaction("100", "80")
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil)

	_, err := s.service.RecordPayment(s.ctx, txn.TransactionID, dto.RecordPaymentRequest{Amount: dec("30"), Method: "cash"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrOverPayment)
	s.mockTxnRepo.AssertNotCalled(s.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordPayment_ExactSettlementAllowed() {
	txn := s.pendingTransaction("100", "80")
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil)

	updated := *txn
	updated.PaidAmount = dec("100")
	updated.Status = domain.StatusPaid
	s.mockTxnRepo.On("RecordPayment", s.ctx, txn.TransactionID, mock.AnythingOfType("domain.Payment"), s.userID).
		Return(&updated, nil)

	got, err := s.service.RecordPayment(s.ctx, txn.TransactionID, dto.RecordPaymentRequest{Amount: dec("20"), Method: "upi"}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusPaid, got.Status)
	s.True(got.BalanceDue().IsZero())
}

func (s *TransactionServiceTestSuite) TestRecordPayment_CancelledRejected() {
	txn := s.pendingTransaction("100", "0")
	txn.Status = domain.StatusCancelled
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil)

	_, err := s.service.RecordPayment(s.ctx, txn.TransactionID, dto.RecordPaymentRequest{Amount: dec("10"), Method: "cash"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *TransactionServiceTestSuite) TestRecordPayment_NonPositiveAmountRejected() {
	_, err := s.service.RecordPayment(s.ctx, uuid.NewString(), dto.RecordPaymentRequest{Amount: dec("0"), Method: "cash"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTxnRepo.AssertNotCalled(s.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestUpdateStatus_CancelledIsTerminal() {
	txn := s.pendingTransaction("100", "0")
	txn.Status = domain.StatusCancelled
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil)

	_, err := s.service.UpdateTransactionStatus(s.ctx, txn.TransactionID, dto.UpdateTransactionStatusRequest{Status: "pending"}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockTxnRepo.AssertNotCalled(s.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestUpdateStatus_MovesToOverdue() {
	txn := s.pendingTransaction("100", "0")
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(txn, nil).Once()
	s.mockTxnRepo.On("UpdateTransactionStatus", s.ctx, txn.TransactionID, domain.StatusOverdue, s.userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	updated := *txn
	updated.Status = domain.StatusOverdue
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(&updated, nil).Once()

	got, err := s.service.UpdateTransactionStatus(s.ctx, txn.TransactionID, dto.UpdateTransactionStatusRequest{Status: "overdue"}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.StatusOverdue, got.Status)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func TestPercentBoundaries(t *testing.T) {
	mockTxnRepo := new(MockTransactionRepository)
	mockProductRepo := new(MockProductRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	mockVendorRepo := new(MockVendorRepository)
	svc := services.NewTransactionService(mockTxnRepo, mockProductRepo, mockCustomerRepo, mockVendorRepo)

	customerID := uuid.NewString()
	productID := uuid.NewString()
	products := map[string]domain.Product{
		productID: {ProductID: productID, Price: dec("10"), Quantity: dec("100"), IsActive: true},
	}
	mockCustomerRepo.On("FindCustomerByID", mock.Anything, customerID).
		Return(&domain.Customer{CustomerID: customerID, IsActive: true}, nil)
	mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).Return(products, nil)
	mockTxnRepo.On("SaveTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// 100% discount and 0% tax are both legal boundary values.
	req := dto.CreateTransactionRequest{
		Type:            "sale",
		CustomerID:      &customerID,
		DiscountPercent: dec("100"),
		TaxPercent:      dec("0"),
		Items: []dto.CreateTransactionItemRequest{
			{ProductID: productID, Quantity: dec("2")},
		},
	}
	txn, err := svc.CreateTransaction(context.Background(), req, uuid.NewString())

	assert.NoError(t, err)
	assert.True(t, txn.Total.IsZero(), "fully discounted sale should total zero, got %s", txn.Total)
}
