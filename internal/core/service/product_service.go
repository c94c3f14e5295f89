package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecore/catalog-api/internal/api/metrics"
	"github.com/storecore/catalog-api/internal/core/domain"
	"github.com/storecore/catalog-api/internal/core/ports"
)

// ProductService implements the catalog use cases. Each product is either
// absent or present; create, changePrice and delete drive the transitions and
// are gated by the idempotency ledger before any business validation runs.
type ProductService struct {
	repo   ports.ProductRepository
	ledger ports.IdempotencyLedger
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, ledger ports.IdempotencyLedger, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, ledger: ledger, logger: logger}
}

// Create admits the idempotency key, then persists a new product. A duplicate
// sku fails domain.ErrProductExists — with the key already consumed, so the
// same retry is rejected as reused even though no product was created.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := s.ledger.Admit(ctx, input.IdempotencyKey, input.Owner, http.MethodPost, input.Path); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w with sku: %s", domain.ErrProductExists, input.SKU)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Price:       input.Price,
		Currency:    input.Currency,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Int64("id", product.ID).Str("sku", product.SKU).Str("owner", input.Owner).Msg("product created")
	return product, nil
}

// GetByID is a pure lookup with no idempotency gate.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetBySKU is a pure lookup with no idempotency gate.
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	product, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// List returns all products in store insertion order.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// ChangePrice admits the idempotency key, then updates the price in place.
// The key is consumed even when the product turns out not to exist.
func (s *ProductService) ChangePrice(ctx context.Context, input ports.ChangePriceInput) (*domain.Product, error) {
	if err := s.ledger.Admit(ctx, input.IdempotencyKey, input.Owner, http.MethodPut, input.Path); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return nil, err
	}

	product, err := s.repo.UpdatePrice(ctx, input.ID, input.NewPrice, time.Now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Int64("id", input.ID).Msg("failed to change price")
		return nil, err
	}

	metrics.PriceChangesTotal.Inc()
	s.logger.Info().Int64("id", product.ID).Float64("new_price", product.Price).Msg("product price changed")
	return product, nil
}

// Delete admits the idempotency key, then removes the product. The key is
// consumed even when the product turns out not to exist.
func (s *ProductService) Delete(ctx context.Context, input ports.DeleteProductInput) error {
	if err := s.ledger.Admit(ctx, input.IdempotencyKey, input.Owner, http.MethodDelete, input.Path); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, input.ID); err != nil {
		s.logger.Error().Err(err).Int64("id", input.ID).Msg("failed to delete product")
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Int64("id", input.ID).Msg("product deleted")
	return nil
}
