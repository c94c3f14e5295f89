package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// ProductRepository persists products in the products table.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Insert persists a new product and fills in the store-assigned id.
// A unique violation on the sku column maps to domain.ErrProductExists.
func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, insertProduct,
		p.SKU, p.Name, p.Price, p.Currency, nullableString(p.Description), p.CreatedAt, p.UpdatedAt)
	if err := row.Scan(&p.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w with sku: %s", domain.ErrProductExists, p.SKU)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, findProductByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w with id: %d", domain.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, findProductBySKU, sku))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w with sku: %s", domain.ErrProductNotFound, sku)
		}
		return nil, fmt.Errorf("find product by sku: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, productExistsBySKU, sku).Scan(&exists); err != nil {
		return false, fmt.Errorf("product exists by sku: %w", err)
	}
	return exists, nil
}

// List returns all products in id (insertion) order.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) UpdatePrice(ctx context.Context, id int64, price float64, updatedAt time.Time) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, updateProductPrice, price, updatedAt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w with id: %d", domain.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("update product price: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w with id: %d", domain.ErrProductNotFound, id)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var description sql.NullString
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Currency, &description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Description = description.String
	return &p, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
