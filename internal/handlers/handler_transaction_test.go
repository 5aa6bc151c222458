package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/core/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/handlers"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/bizledger/inventory_billing_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) RecordPayment(ctx context.Context, transactionID string, req dto.RecordPaymentRequest, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, req dto.UpdateTransactionStatusRequest, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

// generateTestToken creates a signed JWT for the given user and role.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "ibms-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

// doRequest serves a request with a valid employee token and returns the recorder.
func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any, userID string) *httptest.ResponseRecorder {
	return suite.doRequestAs(method, url, body, userID, domain.RoleEmployee)
}

// doRequestAs serves a request with a token carrying the given role.
func (suite *TransactionHandlerTestSuite) doRequestAs(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, role))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func saleFixture(customerID string) *domain.Transaction {
	now := time.Now().UTC()
	return &domain.Transaction{
		TransactionID:     uuid.NewString(),
		TransactionNumber: "INV26090001",
		Type:              domain.Sale,
		CustomerID:        &customerID,
		Items: []domain.TransactionItem{
			{
				ItemID:    uuid.NewString(),
				ProductID: uuid.NewString(),
				Quantity:  decimal.NewFromInt(3),
				UnitPrice: decimal.NewFromInt(100),
				LineTotal: decimal.NewFromInt(300),
			},
		},
		Subtotal:        decimal.NewFromInt(300),
		DiscountPercent: decimal.NewFromInt(10),
		DiscountAmount:  decimal.NewFromInt(30),
		TaxPercent:      decimal.NewFromInt(5),
		TaxAmount:       decimal.RequireFromString("13.50"),
		Total:           decimal.RequireFromString("283.50"),
		PaidAmount:      decimal.Zero,
		Status:          domain.StatusPending,
		TransactionDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     uuid.NewString(),
			LastUpdatedAt: now,
			LastUpdatedBy: uuid.NewString(),
		},
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	customerID := uuid.NewString()
	expected := saleFixture(customerID)

	reqBody := dto.CreateTransactionRequest{
		Type:            "sale",
		CustomerID:      &customerID,
		Items:           []dto.CreateTransactionItemRequest{{ProductID: expected.Items[0].ProductID, Quantity: decimal.NewFromInt(3)}},
		DiscountPercent: decimal.NewFromInt(10),
		TaxPercent:      decimal.NewFromInt(5),
	}

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Type == "sale" && r.CustomerID != nil && *r.CustomerID == customerID && len(r.Items) == 1
		}),
		userID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", reqBody, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("INV26090001", resp.TransactionNumber)
	suite.True(resp.Total.Equal(decimal.RequireFromString("283.50")))
	suite.True(resp.BalanceDue.Equal(decimal.RequireFromString("283.50")))

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingItemsRejected() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	reqBody := gin.H{"type": "sale", "customerID": customerID, "items": []any{}}

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InsufficientStockIs400() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	reqBody := dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &customerID,
		Items:      []dto.CreateTransactionItemRequest{{ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(99)}},
	}

	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("product short by 97: %w", apperrors.ErrInsufficientStock)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "insufficient stock")

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InactiveCustomerIs400() {
	userID := uuid.NewString()
	customerID := uuid.NewString()

	reqBody := dto.CreateTransactionRequest{
		Type:       "sale",
		CustomerID: &customerID,
		Items:      []dto.CreateTransactionItemRequest{{ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(1)}},
	}

	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: customer %s", services.ErrInactiveParty, customerID)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "inactive")

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFoundIs404() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockService.On("GetTransactionByID", mock.Anything, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesFilters() {
	userID := uuid.NewString()
	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{dto.ToTransactionResponse(saleFixture(uuid.NewString()))},
	}

	suite.mockService.On("ListTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Type == "sale" && p.Status == "pending" && p.Limit == 10
		}),
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?type=sale&status=pending&limit=10", nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecordPayment_OverpaymentIs400() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	reqBody := dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1000), Method: "cash"}

	suite.mockService.On("RecordPayment", mock.Anything, txnID, mock.Anything, userID).
		Return(nil, apperrors.ErrOverPayment).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/"+txnID+"/payments", reqBody, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecordPayment_Success() {
	userID := uuid.NewString()
	expected := saleFixture(uuid.NewString())
	expected.PaidAmount = decimal.RequireFromString("283.50")
	expected.Status = domain.StatusPaid

	reqBody := dto.RecordPaymentRequest{Amount: decimal.RequireFromString("283.50"), Method: "upi", Reference: "UPI-123"}

	suite.mockService.On("RecordPayment",
		mock.Anything,
		expected.TransactionID,
		mock.MatchedBy(func(r dto.RecordPaymentRequest) bool {
			return r.Method == "upi" && r.Amount.Equal(decimal.RequireFromString("283.50"))
		}),
		userID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/"+expected.TransactionID+"/payments", reqBody, userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("paid", resp.Status)
	suite.True(resp.BalanceDue.IsZero())

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_CancelledIs409() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	reqBody := dto.UpdateTransactionStatusRequest{Status: "paid"}

	suite.mockService.On("UpdateTransactionStatus", mock.Anything, txnID, reqBody, userID).
		Return(nil, fmt.Errorf("transaction is cancelled: %w", apperrors.ErrConflict)).Once()

	w := suite.doRequestAs(http.MethodPatch, "/api/v1/transactions/"+txnID+"/status", reqBody, userID, domain.RoleManager)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_EmployeeIsForbidden() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	reqBody := dto.UpdateTransactionStatusRequest{Status: "paid"}

	w := suite.doRequest(http.MethodPatch, "/api/v1/transactions/"+txnID+"/status", reqBody, userID)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateTransactionStatus")
}

func (suite *TransactionHandlerTestSuite) TestMissingTokenIs401() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
