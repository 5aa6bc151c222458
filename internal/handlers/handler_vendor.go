package handlers

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// VendorHandler handles vendor management requests.
type VendorHandler struct {
	vendorService    portssvc.VendorSvcFacade
	reportingService portssvc.ReportingSvc
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vs portssvc.VendorSvcFacade, rs portssvc.ReportingSvc) *VendorHandler {
	return &VendorHandler{vendorService: vs, reportingService: rs}
}

// registerVendorRoutes sets up the routes for vendor management.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade, reportingService portssvc.ReportingSvc) {
	h := NewVendorHandler(vendorService, reportingService)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.ListVendors)
		vendors.GET("/payables", h.ListPayables)
		vendors.GET("/:id", h.GetVendor)
		vendors.POST("", middleware.RequireRole(domain.RoleManager), h.CreateVendor)
		vendors.PUT("/:id", middleware.RequireRole(domain.RoleManager), h.UpdateVendor)
		vendors.DELETE("/:id", middleware.RequireRole(domain.RoleManager), h.DeactivateVendor)
	}
}

// ListVendors godoc
// @Summary List vendors
// @Description Lists active vendors with optional text search. Paginated by nextToken.
// @Tags vendors
// @Produce json
// @Param search query string false "Match against name, email and phone"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.vendorService.ListVendors(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "failed to list vendors")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPayables godoc
// @Summary List vendors with outstanding payables
// @Description Returns vendors the business owes money to, largest payable first, with the total.
// @Tags vendors
// @Produce json
// @Success 200 {object} dto.OutstandingBalancesResponse
// @Security BearerAuth
// @Router /vendors/payables [get]
func (h *VendorHandler) ListPayables(c *gin.Context) {
	resp, err := h.reportingService.GetOutstandingPayables(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list payables")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetVendor godoc
// @Summary Get vendor by ID
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// CreateVendor godoc
// @Summary Create vendor
// @Description Creates a vendor with a zero opening payable. Requires manager role.
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Security BearerAuth
// @Router /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "failed to create vendor")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// UpdateVendor godoc
// @Summary Update vendor
// @Description Partially updates vendor details. Payable is never writable here. Requires manager role.
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to update vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// DeactivateVendor godoc
// @Summary Deactivate vendor
// @Description Soft-deletes a vendor. History and payable are retained. Requires manager role.
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *VendorHandler) DeactivateVendor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeactivateVendor(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "failed to deactivate vendor")
		return
	}

	c.Status(http.StatusNoContent)
}
