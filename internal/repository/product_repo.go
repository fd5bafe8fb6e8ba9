package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shop_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const productColumns = `id, name, description, price, category_id, image_url, created_at`

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, product *domain.Product) error {
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.CategoryID,
		&product.ImageURL,
		&product.CreatedAt,
	); err != nil {
		return err
	}
	product.CreatedAt = product.CreatedAt.UTC()
	return nil
}

// translateWriteError maps constraint violations raised on insert/update.
func (r *postgresProductRepository) translateWriteError(err error, categoryID int) error {
	code, pqErr := pqErrorCode(err)
	switch code {
	case pqForeignKeyViolation:
		r.log.Warnf("Repository: Product references non-existent category ID: %d", categoryID)
		return fmt.Errorf("category with id %d: %w", categoryID, domain.ErrCategoryNotFound)
	case pqCheckViolation:
		r.log.Warnf("Repository: Check constraint violation for product: %s", pqErr.Message)
		return fmt.Errorf("product data constraint violation: %s: %w", pqErr.Message, domain.ErrInvalidInput)
	}
	return nil
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, price, category_id, image_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.CategoryID,
		product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		if mapped := r.translateWriteError(err, product.CategoryID); mapped != nil {
			return nil, mapped
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	product.CreatedAt = product.CreatedAt.UTC()

	r.log.Infof("Repository: Product created %s", product)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product := &domain.Product{}

	err := scanProduct(r.db.QueryRowContext(ctx, query, id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	r.log.Debugf("Repository: Product retrieved with ID: %d", id)
	return product, nil
}

func (r *postgresProductRepository) GetProductsByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	products := []domain.Product{}
	if len(ids) == 0 {
		return products, nil
	}

	idArray := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		idArray[i] = int64(id)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, idArray)
	if err != nil {
		r.log.Errorf("Repository: Failed to get products by IDs %v: %v", ids, err)
		return nil, fmt.Errorf("could not get products by ids: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows, "by ids")
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error) {
	if update.IsEmpty() {
		r.log.Infof("Repository: No fields provided for product update ID %d. Returning current product.", id)
		return r.GetProductByID(ctx, id)
	}

	args := []any{}
	setClauses := []string{}
	set := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.CategoryID != nil {
		set("category_id", *update.CategoryID)
	}
	if update.ImageURL != nil {
		set("image_url", *update.ImageURL)
	}

	args = append(args, id)
	query := "UPDATE products SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), productColumns)

	r.log.Debugf("Repository: Executing partial update query for ID %d: %s with args: %v", id, query, args)

	product := &domain.Product{}
	err := scanProduct(r.db.QueryRowContext(ctx, query, args...), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Product with ID %d not found for update", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		catID := 0
		if update.CategoryID != nil {
			catID = *update.CategoryID
		}
		if mapped := r.translateWriteError(err, catID); mapped != nil {
			return nil, mapped
		}
		r.log.Errorf("Repository: Failed to execute partial update for product ID %d: %v", id, err)
		return nil, fmt.Errorf("could not partially update product: %w", err)
	}

	r.log.Infof("Repository: Partial update successful for %s", product)
	return product, nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Repository: Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Repository: Product deleted with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	limit, offset = clampPage(limit, offset)

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products with limit %d, offset %d: %v", limit, offset, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows, fmt.Sprintf("(limit: %d, offset: %d)", limit, offset))
}

// ListProductsByCategory is the reverse lookup from a category to its products.
func (r *postgresProductRepository) ListProductsByCategory(ctx context.Context, categoryID, limit, offset int) ([]domain.Product, error) {
	limit, offset = clampPage(limit, offset)

	query := `SELECT ` + productColumns + `
        FROM products
        WHERE category_id = $1
        ORDER BY id ASC
        LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, categoryID, limit, offset)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products for category %d (limit %d, offset %d): %v", categoryID, limit, offset, err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	defer rows.Close()

	return r.collectProducts(rows, fmt.Sprintf("for category %d (limit: %d, offset: %d)", categoryID, limit, offset))
}

func (r *postgresProductRepository) collectProducts(rows *sql.Rows, scope string) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := scanProduct(rows, &product); err != nil {
			r.log.Errorf("Repository: Failed to scan product row %s: %v", scope, err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during products iteration %s: %v", scope, err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Debugf("Repository: Retrieved %d products %s", len(products), scope)
	return products, nil
}
