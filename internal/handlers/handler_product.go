package handlers

import (
	"net/http"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog and stock requests.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps portssvc.ProductSvcFacade) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// registerProductRoutes sets up the routes for product management.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := NewProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/categories", h.ListCategories)
		products.GET("/low-stock", h.ListLowStock)
		products.GET("/:id", h.GetProduct)
		products.POST("", middleware.RequireRole(domain.RoleManager), h.CreateProduct)
		products.PUT("/:id", middleware.RequireRole(domain.RoleManager), h.UpdateProduct)
		products.PATCH("/:id/stock", h.AdjustStock)
		products.DELETE("/:id", middleware.RequireRole(domain.RoleManager), h.DeactivateProduct)
	}
}

// ListProducts godoc
// @Summary List products
// @Description Lists products with optional category, price range, stock and text filters. Paginated by nextToken.
// @Tags products
// @Produce json
// @Param category query string false "Filter by category"
// @Param minPrice query number false "Minimum selling price"
// @Param maxPrice query number false "Maximum selling price"
// @Param inStock query boolean false "Only products with quantity > 0"
// @Param search query string false "Match against name and SKU"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "failed to list products")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCategories godoc
// @Summary List product categories
// @Description Returns the distinct categories of active products.
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /products/categories [get]
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListLowStock godoc
// @Summary List low stock products
// @Description Returns active products at or below their stock threshold.
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	products, err := h.productService.ListLowStockProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list low stock products")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// CreateProduct godoc
// @Summary Create product
// @Description Creates a product with a unique SKU. Requires manager role.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "SKU already exists"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Update product
// @Description Partially updates product details. Requires manager role.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// AdjustStock godoc
// @Summary Adjust product stock
// @Description Sets, adds to, or subtracts from a product's stock quantity.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body dto.AdjustStockRequest true "Stock adjustment"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid operation or insufficient stock"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeactivateProduct godoc
// @Summary Deactivate product
// @Description Soft-deletes a product so it no longer appears in listings. Requires manager role.
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeactivateProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.productService.DeactivateProduct(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "failed to deactivate product")
		return
	}

	c.Status(http.StatusNoContent)
}
