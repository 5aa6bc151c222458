package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	"github.com/bizledger/inventory_billing_app/internal/models"
	"github.com/bizledger/inventory_billing_app/internal/utils/mapping"
	"github.com/bizledger/inventory_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vendorColumns = `
	vendor_id, name, email, phone,
	address_street, address_city, address_state, address_zip_code, address_country,
	payable, is_active, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.AddressStreet,
		&m.AddressCity,
		&m.AddressState,
		&m.AddressZipCode,
		&m.AddressCountry,
		&m.Payable,
		&m.IsActive,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveVendor persists a new vendor. A duplicate email maps to ErrDuplicate.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor *domain.Vendor) error {
	m := mapping.ToModelVendor(*vendor)
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID, m.Name, m.Email, m.Phone,
		m.AddressStreet, m.AddressCity, m.AddressState, m.AddressZipCode, m.AddressCountry,
		m.Payable, m.IsActive, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "vendor with email "+m.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert vendor "+m.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by its ID.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`
	m, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vendor by ID "+vendorID, err)
	}
	d := mapping.ToDomainVendor(*m)
	return &d, nil
}

// ListVendors retrieves a paginated list of active vendors using token-based pagination.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Vendor, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + vendorColumns + ` FROM vendors`
	filterClause := ` WHERE is_active = TRUE`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		filterClause += ` AND (name ILIKE $` + n + ` OR email ILIKE $` + n + ` OR phone ILIKE $` + n + `)`
	}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeKeysetToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Row-value comparison matches the ORDER BY so rows sharing a
		// created_at are not skipped across pages.
		args = append(args, lastCreatedAt, lastID)
		filterClause += ` AND (created_at, vendor_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + ` ORDER BY created_at DESC, vendor_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vendors", err)
	}
	defer rows.Close()

	modelVendors := make([]models.Vendor, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan vendor row", err)
		}
		modelVendors = append(modelVendors, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating vendor rows", err)
	}

	var nextTokenVal *string
	results := modelVendors
	if len(modelVendors) > limit {
		last := modelVendors[limit-1]
		token := pagination.EncodeKeysetToken(last.CreatedAt, last.VendorID)
		nextTokenVal = &token
		results = modelVendors[:limit]
	}

	return mapping.ToDomainVendorSlice(results), nextTokenVal, nil
}

// UpdateVendor updates a vendor's descriptive fields.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor *domain.Vendor) error {
	m := mapping.ToModelVendor(*vendor)
	query := `
		UPDATE vendors
		SET name = $2,
		    email = $3,
		    phone = $4,
		    address_street = $5,
		    address_city = $6,
		    address_state = $7,
		    address_zip_code = $8,
		    address_country = $9,
		    notes = $10,
		    last_updated_at = $11,
		    last_updated_by = $12
		WHERE vendor_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VendorID, m.Name, m.Email, m.Phone,
		m.AddressStreet, m.AddressCity, m.AddressState, m.AddressZipCode, m.AddressCountry,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "vendor with email "+m.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to update vendor "+m.VendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("vendor " + m.VendorID + " not found for update")
	}
	return nil
}

// DeactivateVendor marks a vendor as inactive.
func (r *PgxVendorRepository) DeactivateVendor(ctx context.Context, vendorID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vendors
		SET is_active = FALSE,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE vendor_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, vendorID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate vendor "+vendorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("vendor " + vendorID + " not found for deactivation")
	}
	return nil
}
