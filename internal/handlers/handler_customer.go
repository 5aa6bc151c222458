package handlers

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer management requests.
type CustomerHandler struct {
	customerService  portssvc.CustomerSvcFacade
	reportingService portssvc.ReportingSvc
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs portssvc.CustomerSvcFacade, rs portssvc.ReportingSvc) *CustomerHandler {
	return &CustomerHandler{customerService: cs, reportingService: rs}
}

// registerCustomerRoutes sets up the routes for customer management.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, reportingService portssvc.ReportingSvc) {
	h := NewCustomerHandler(customerService, reportingService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/outstanding", h.ListOutstanding)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", middleware.RequireRole(domain.RoleManager), h.CreateCustomer)
		customers.PUT("/:id", middleware.RequireRole(domain.RoleManager), h.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequireRole(domain.RoleManager), h.DeactivateCustomer)
	}
}

// ListCustomers godoc
// @Summary List customers
// @Description Lists active customers with optional text search. Paginated by nextToken.
// @Tags customers
// @Produce json
// @Param search query string false "Match against name, email and phone"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "failed to list customers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOutstanding godoc
// @Summary List customers with outstanding balances
// @Description Returns customers owing money, largest balance first, with the total receivable.
// @Tags customers
// @Produce json
// @Success 200 {object} dto.OutstandingBalancesResponse
// @Security BearerAuth
// @Router /customers/outstanding [get]
func (h *CustomerHandler) ListOutstanding(c *gin.Context) {
	resp, err := h.reportingService.GetOutstandingReceivables(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list outstanding balances")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// CreateCustomer godoc
// @Summary Create customer
// @Description Creates a customer with a zero opening balance. Requires manager role.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Partially updates customer details. Balance is never writable here. Requires manager role.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to update customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// DeactivateCustomer godoc
// @Summary Deactivate customer
// @Description Soft-deletes a customer. History and balance are retained. Requires manager role.
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeactivateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "failed to deactivate customer")
		return
	}

	c.Status(http.StatusNoContent)
}
