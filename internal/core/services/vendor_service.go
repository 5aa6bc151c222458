package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// vendorService provides vendor management operations.
type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor persists a new vendor with a zero opening payable.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	now := time.Now().UTC()
	vendor := domain.Vendor{
		VendorID: uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address.ToDomainAddress(),
		Payable:  decimal.Zero,
		IsActive: true,
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, &vendor); err != nil {
		s.LogError(ctx, err, "failed to save vendor", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

// GetVendorByID retrieves a vendor by ID.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

// ListVendors retrieves a paginated, filtered list of vendors.
func (s *vendorService) ListVendors(ctx context.Context, params dto.ListPartiesParams) (*dto.ListVendorsResponse, error) {
	vendors, nextToken, err := s.vendorRepo.ListVendors(ctx, domain.PartyFilter{Search: params.Search}, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListVendorsResponse{
		Vendors:   dto.ToVendorResponses(vendors),
		NextToken: nextToken,
	}, nil
}

// UpdateVendor applies the provided field updates. Payable is untouchable here.
func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Address != nil {
		vendor.Address = req.Address.ToDomainAddress()
	}
	if req.Notes != nil {
		vendor.Notes = *req.Notes
	}

	vendor.LastUpdatedAt = time.Now().UTC()
	vendor.LastUpdatedBy = requestingUserID

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, err
	}
	return vendor, nil
}

// DeactivateVendor marks a vendor as inactive.
func (s *vendorService) DeactivateVendor(ctx context.Context, vendorID string, requestingUserID string) error {
	if err := s.vendorRepo.DeactivateVendor(ctx, vendorID, requestingUserID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to deactivate vendor", slog.String("vendor_id", vendorID))
		return err
	}
	s.LogInfo(ctx, "vendor deactivated", slog.String("vendor_id", vendorID))
	return nil
}
