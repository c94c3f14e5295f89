package ports

import (
	"context"
	"time"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
//
// Uniqueness of the sku column is enforced by the store itself; Insert maps a
// constraint violation to domain.ErrProductExists so the preceding ExistsBySKU
// check remains an optimization, not the correctness mechanism.
type ProductRepository interface {
	// Insert persists a new product and fills in the store-assigned ID.
	Insert(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	// List returns all products in insertion (id) order.
	List(ctx context.Context) ([]*domain.Product, error)
	// UpdatePrice sets the price and updated_at timestamp, returning the
	// updated record. Fails domain.ErrProductNotFound when the row is absent.
	UpdatePrice(ctx context.Context, id int64, price float64, updatedAt time.Time) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
