package handlers

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles sale and purchase transaction requests.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes sets up the routes for transactions and payments.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := NewTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:id", h.GetTransaction)
		transactions.POST("", h.CreateTransaction)
		transactions.PATCH("/:id/status", middleware.RequireRole(domain.RoleManager), h.UpdateStatus)
		transactions.POST("/:id/payments", h.RecordPayment)
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with optional type, status, party and date range filters. Paginated by nextToken.
// @Tags transactions
// @Produce json
// @Param type query string false "sale or purchase"
// @Param status query string false "Transaction status"
// @Param customerId query string false "Filter by customer"
// @Param vendorId query string false "Filter by vendor"
// @Param fromDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTransaction godoc
// @Summary Get transaction by ID
// @Description Returns a transaction with its line items and payment history.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// CreateTransaction godoc
// @Summary Create transaction
// @Description Posts a sale or purchase atomically: totals are computed server-side, stock and party balance move together, and a sequential number is assigned.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Validation failure or insufficient stock"
// @Failure 404 {object} ErrorResponse "Unknown party or product"
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// UpdateStatus godoc
// @Summary Update transaction status
// @Description Moves a transaction to a new status. Cancelled transactions cannot change. Requires manager role.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "Target status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is cancelled"
// @Security BearerAuth
// @Router /transactions/{id}/status [patch]
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransactionStatus(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to update transaction status")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// RecordPayment godoc
// @Summary Record payment
// @Description Records a payment against a transaction, updating the paid amount, status and party balance atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount or overpayment"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is cancelled"
// @Security BearerAuth
// @Router /transactions/{id}/payments [post]
func (h *TransactionHandler) RecordPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	txn, err := h.transactionService.RecordPayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
