package services_test

import (
	"context"
	"testing"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/core/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
	ctx      context.Context
	userID   string
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockProductRepository)
	s.service = services.NewProductService(s.mockRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (s *ProductServiceTestSuite) TestCreateProduct_Success() {
	var saved *domain.Product
	s.mockRepo.On("SaveProduct", s.ctx, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Product) }).
		Return(nil)

	req := dto.CreateProductRequest{
		SKU:           "WID-001",
		Name:          "Widget",
		Category:      "hardware",
		Unit:          "piece",
		Price:         dec("49.99"),
		CostPrice:     dec("30"),
		Quantity:      dec("12"),
		MinStockLevel: dec("3"),
	}

	product, err := s.service.CreateProduct(s.ctx, req, s.userID)

	s.Require().NoError(err)
	s.NotEmpty(product.ProductID)
	s.True(product.IsActive)
	s.False(product.IsLowStock())
	s.Equal(s.userID, saved.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreateProduct_NegativePriceRejected() {
	req := dto.CreateProductRequest{
		SKU:      "WID-002",
		Name:     "Widget",
		Category: "hardware",
		Unit:     "piece",
		Price:    dec("-1"),
	}

	_, err := s.service.CreateProduct(s.ctx, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestAdjustStock_SubtractUsesNegativeDelta() {
	productID := uuid.NewString()
	updated := &domain.Product{ProductID: productID, Quantity: dec("7")}
	s.mockRepo.On("ApplyStockDelta", s.ctx, productID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("-3"))
	}), s.userID, mock.AnythingOfType("time.Time")).Return(updated, nil)

	got, err := s.service.AdjustStock(s.ctx, productID, dto.AdjustStockRequest{Operation: "subtract", Quantity: dec("3")}, s.userID)

	s.Require().NoError(err)
	s.True(got.Quantity.Equal(dec("7")))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestAdjustStock_InsufficientStockPropagates() {
	productID := uuid.NewString()
	s.mockRepo.On("ApplyStockDelta", s.ctx, productID, mock.Anything, s.userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInsufficientStock)

	_, err := s.service.AdjustStock(s.ctx, productID, dto.AdjustStockRequest{Operation: "subtract", Quantity: dec("99")}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_AppliesPartialFields() {
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID: productID,
		Name:      "Widget",
		Category:  "hardware",
		Unit:      "piece",
		Price:     dec("49.99"),
		IsActive:  true,
	}
	s.mockRepo.On("FindProductByID", s.ctx, productID).Return(existing, nil)
	s.mockRepo.On("UpdateProduct", s.ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	newPrice := dec("59.99")
	got, err := s.service.UpdateProduct(s.ctx, productID, dto.UpdateProductRequest{Price: &newPrice}, s.userID)

	s.Require().NoError(err)
	s.True(got.Price.Equal(newPrice))
	s.Equal("Widget", got.Name, "unset fields stay untouched")
	s.Equal(s.userID, got.LastUpdatedBy)
}
