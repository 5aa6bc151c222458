package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// customerService provides customer management operations.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer persists a new customer with a zero opening balance.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
	}
	customerType := domain.CustomerType(req.CustomerType)
	if customerType == "" {
		customerType = domain.CustomerIndividual
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address.ToDomainAddress(),
		CustomerType: customerType,
		CreditLimit:  req.CreditLimit,
		Balance:      decimal.Zero,
		IsActive:     true,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, &customer); err != nil {
		s.LogError(ctx, err, "failed to save customer", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer by ID.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves a paginated, filtered list of customers.
func (s *customerService) ListCustomers(ctx context.Context, params dto.ListPartiesParams) (*dto.ListCustomersResponse, error) {
	customers, nextToken, err := s.customerRepo.ListCustomers(ctx, domain.PartyFilter{Search: params.Search}, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListCustomersResponse{
		Customers: dto.ToCustomerResponses(customers),
		NextToken: nextToken,
	}, nil
}

// UpdateCustomer applies the provided field updates. Balance is untouchable here.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address.ToDomainAddress()
	}
	if req.CustomerType != nil {
		customer.CustomerType = domain.CustomerType(*req.CustomerType)
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		customer.CreditLimit = *req.CreditLimit
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

// DeactivateCustomer marks a customer as inactive. Past transactions keep
// referencing it.
func (s *customerService) DeactivateCustomer(ctx context.Context, customerID string, requestingUserID string) error {
	if err := s.customerRepo.DeactivateCustomer(ctx, customerID, requestingUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate customer", slog.String("customer_id", customerID))
		return err
	}
	s.LogInfo(ctx, "customer deactivated", slog.String("customer_id", customerID))
	return nil
}
