package handlers

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReportingHandler handles dashboard and report requests.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(rs portssvc.ReportingSvc) *ReportingHandler {
	return &ReportingHandler{reportingService: rs}
}

// registerDashboardRoutes sets up the routes for dashboards and reports.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := NewReportingHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/overview", h.GetOverview)
		dashboard.GET("/inventory", h.GetInventoryReport)
		// Financial figures are restricted to managers and admins
		dashboard.GET("/sales", middleware.RequireRole(domain.RoleManager), h.GetSalesAnalytics)
		dashboard.GET("/financial", middleware.RequireRole(domain.RoleManager), h.GetFinancialSummary)
	}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Returns headline totals, counts of parties and products, outstanding balances and recent transactions.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardOverviewResponse
// @Security BearerAuth
// @Router /dashboard/overview [get]
func (h *ReportingHandler) GetOverview(c *gin.Context) {
	resp, err := h.reportingService.GetDashboardOverview(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build dashboard overview")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSalesAnalytics godoc
// @Summary Sales analytics
// @Description Returns sales totals bucketed by day of week, day of month, or month. Requires manager role.
// @Tags dashboard
// @Produce json
// @Param period query string false "week, month (default) or year"
// @Success 200 {object} dto.SalesAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/sales [get]
func (h *ReportingHandler) GetSalesAnalytics(c *gin.Context) {
	var params dto.SalesAnalyticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.reportingService.GetSalesAnalytics(c.Request.Context(), domain.SalesAnalyticsPeriod(params.Period))
	if err != nil {
		respondError(c, err, "failed to build sales analytics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInventoryReport godoc
// @Summary Inventory report
// @Description Returns per-category product counts, stock valuation and low stock counts.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.InventoryReportResponse
// @Security BearerAuth
// @Router /dashboard/inventory [get]
func (h *ReportingHandler) GetInventoryReport(c *gin.Context) {
	resp, err := h.reportingService.GetInventoryReport(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build inventory report")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFinancialSummary godoc
// @Summary Financial summary
// @Description Returns sales and purchase aggregates with profit for an optional date range. Requires manager role.
// @Tags dashboard
// @Produce json
// @Param fromDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param toDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/financial [get]
func (h *ReportingHandler) GetFinancialSummary(c *gin.Context) {
	var params dto.FinancialSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.reportingService.GetFinancialSummary(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "failed to build financial summary")
		return
	}

	c.JSON(http.StatusOK, resp)
}
