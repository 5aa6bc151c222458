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

const customerColumns = `
	customer_id, name, email, phone,
	address_street, address_city, address_state, address_zip_code, address_country,
	customer_type, credit_limit, balance, is_active, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.AddressStreet,
		&m.AddressCity,
		&m.AddressState,
		&m.AddressZipCode,
		&m.AddressCountry,
		&m.CustomerType,
		&m.CreditLimit,
		&m.Balance,
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

// SaveCustomer persists a new customer. A duplicate email maps to ErrDuplicate.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	m := mapping.ToModelCustomer(*customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Email, m.Phone,
		m.AddressStreet, m.AddressCity, m.AddressState, m.AddressZipCode, m.AddressCountry,
		m.CustomerType, m.CreditLimit, m.Balance, m.IsActive, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "customer with email "+m.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID, err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// ListCustomers retrieves a paginated list of active customers using token-based pagination.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, filter domain.PartyFilter, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + customerColumns + ` FROM customers`
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
		filterClause += ` AND (created_at, customer_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + ` ORDER BY created_at DESC, customer_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	modelCustomers := make([]models.Customer, 0, fetchLimit)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		modelCustomers = append(modelCustomers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}

	var nextTokenVal *string
	results := modelCustomers
	if len(modelCustomers) > limit {
		last := modelCustomers[limit-1]
		token := pagination.EncodeKeysetToken(last.CreatedAt, last.CustomerID)
		nextTokenVal = &token
		results = modelCustomers[:limit]
	}

	return mapping.ToDomainCustomerSlice(results), nextTokenVal, nil
}

// UpdateCustomer updates a customer's descriptive fields.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	m := mapping.ToModelCustomer(*customer)
	query := `
		UPDATE customers
		SET name = $2,
		    email = $3,
		    phone = $4,
		    address_street = $5,
		    address_city = $6,
		    address_state = $7,
		    address_zip_code = $8,
		    address_country = $9,
		    customer_type = $10,
		    credit_limit = $11,
		    notes = $12,
		    last_updated_at = $13,
		    last_updated_by = $14
		WHERE customer_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Email, m.Phone,
		m.AddressStreet, m.AddressCity, m.AddressState, m.AddressZipCode, m.AddressCountry,
		m.CustomerType, m.CreditLimit, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "customer with email "+m.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to update customer "+m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("customer " + m.CustomerID + " not found for update")
	}
	return nil
}

// DeactivateCustomer marks a customer as inactive.
func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE customers
		SET is_active = FALSE,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE customer_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, customerID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate customer "+customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("customer " + customerID + " not found for deactivation")
	}
	return nil
}
