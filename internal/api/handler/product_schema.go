package handler

import (
	"time"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// HeaderIdempotencyID is the request header carrying the client-chosen
// idempotency key for mutating product operations.
const HeaderIdempotencyID = "Idempotency-Id"

type createProductRequest struct {
	SKU         string  `json:"sku" validate:"required,max=64"`
	Name        string  `json:"name" validate:"required,max=128"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
	Description string  `json:"description" validate:"omitempty,max=512"`
}

type changePriceRequest struct {
	NewPrice float64 `json:"newPrice" validate:"gte=0"`
}

type productResponse struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		Currency:    p.Currency,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
