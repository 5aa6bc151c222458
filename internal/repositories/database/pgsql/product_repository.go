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
	"github.com/shopspring/decimal"
)

const productColumns = `
	product_id, sku, name, description, category, unit, price, cost_price,
	quantity, min_stock_level, supplier, barcode, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.SKU,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.Unit,
		&m.Price,
		&m.CostPrice,
		&m.Quantity,
		&m.MinStockLevel,
		&m.Supplier,
		&m.Barcode,
		&m.IsActive,
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

// SaveProduct persists a new product. A duplicate SKU maps to ErrDuplicate.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.SKU, m.Name, m.Description, m.Category, m.Unit,
		m.Price, m.CostPrice, m.Quantity, m.MinStockLevel, m.Supplier, m.Barcode, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "product with SKU "+m.SKU+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID, active or not.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}
	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// FindProductsByIDs retrieves the given products keyed by ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		result[m.ProductID] = mapping.ToDomainProduct(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return result, nil
}

// ListProducts retrieves a paginated list of active products using token-based pagination.
func (r *PgxProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, limit int, nextToken *string) ([]domain.Product, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + productColumns + ` FROM products`
	filterClause := ` WHERE is_active = TRUE`
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		filterClause += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		filterClause += ` AND (name ILIKE $` + n + ` OR sku ILIKE $` + n + ` OR barcode ILIKE $` + n + `)`
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		filterClause += ` AND price >= $` + strconv.Itoa(len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		filterClause += ` AND price <= $` + strconv.Itoa(len(args))
	}
	if filter.InStock {
		filterClause += ` AND quantity > 0`
	}

	orderByClause := ` ORDER BY created_at DESC, product_id DESC`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeKeysetToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Row-value comparison matches the ORDER BY so rows sharing a
		// created_at are not skipped across pages.
		args = append(args, lastCreatedAt, lastID)
		filterClause += ` AND (created_at, product_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + filterClause + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	modelProducts := make([]models.Product, 0, fetchLimit)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		modelProducts = append(modelProducts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	var nextTokenVal *string
	results := modelProducts
	if len(modelProducts) > limit {
		last := modelProducts[limit-1]
		token := pagination.EncodeKeysetToken(last.CreatedAt, last.ProductID)
		nextTokenVal = &token
		results = modelProducts[:limit]
	}

	return mapping.ToDomainProductSlice(results), nextTokenVal, nil
}

// ListCategories retrieves the distinct categories of active products.
func (r *PgxProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM products WHERE is_active = TRUE ORDER BY category;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query product categories", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return categories, nil
}

// ListLowStockProducts retrieves active products at or below their threshold.
func (r *PgxProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND quantity <= min_stock_level
		ORDER BY quantity ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query low stock products", err)
	}
	defer rows.Close()

	modelProducts := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		modelProducts = append(modelProducts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), nil
}

// UpdateProduct updates a product's descriptive fields and prices.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	m := mapping.ToModelProduct(*product)
	query := `
		UPDATE products
		SET name = $2,
		    description = $3,
		    category = $4,
		    unit = $5,
		    price = $6,
		    cost_price = $7,
		    min_stock_level = $8,
		    supplier = $9,
		    barcode = $10,
		    last_updated_at = $11,
		    last_updated_by = $12
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.Description, m.Category, m.Unit,
		m.Price, m.CostPrice, m.MinStockLevel, m.Supplier, m.Barcode,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + m.ProductID + " not found for update")
	}
	return nil
}

// ApplyStockDelta atomically shifts a product's quantity. The WHERE guard
// rejects any shift that would leave the quantity negative.
func (r *PgxProductRepository) ApplyStockDelta(ctx context.Context, productID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error) {
	query := `
		UPDATE products
		SET quantity = quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1 AND quantity + $2 >= 0
		RETURNING ` + productColumns + `;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, delta, updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish "missing" from "would go negative".
			if _, findErr := r.FindProductByID(ctx, productID); findErr != nil {
				return nil, findErr
			}
			return nil, apperrors.ErrInsufficientStock
		}
		return nil, apperrors.NewAppError(500, "failed to adjust stock for product "+productID, err)
	}
	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// SetStockQuantity atomically sets a product's quantity to an absolute value.
func (r *PgxProductRepository) SetStockQuantity(ctx context.Context, productID string, quantity decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Product, error) {
	query := `
		UPDATE products
		SET quantity = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1
		RETURNING ` + productColumns + `;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, quantity, updatedAt, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to set stock for product "+productID, err)
	}
	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// DeactivateProduct marks a product as inactive.
func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, productID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET is_active = FALSE,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, productID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate product "+productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + productID + " not found for deactivation")
	}
	return nil
}
