package ports

import (
	"context"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a new product.
// Owner is the authenticated identity the idempotency key is scoped to, and
// Path is the request path recorded in the ledger.
type CreateProductInput struct {
	SKU            string
	Name           string
	Price          float64
	Currency       string
	Description    string
	IdempotencyKey string
	Owner          string
	Path           string
}

// ChangePriceInput carries the parameters for a price change.
type ChangePriceInput struct {
	ID             int64
	NewPrice       float64
	IdempotencyKey string
	Owner          string
	Path           string
}

// DeleteProductInput carries the parameters for a delete.
type DeleteProductInput struct {
	ID             int64
	IdempotencyKey string
	Owner          string
	Path           string
}

// ProductService defines the catalog use cases. Every mutating operation
// admits its idempotency key before any business validation, so the key is
// consumed even when the operation then fails for an unrelated reason.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ChangePrice(ctx context.Context, input ChangePriceInput) (*domain.Product, error)
	Delete(ctx context.Context, input DeleteProductInput) error
}
