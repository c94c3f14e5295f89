package domain

import (
	"errors"
	"time"
)

// Field limits mirrored by the products schema.
const (
	MaxSKULen         = 64
	MaxNameLen        = 128
	MaxDescriptionLen = 512
)

var ErrProductNotFound = errors.New("product not found")
var ErrProductExists = errors.New("product already exists")

// Product is the core catalog aggregate. The ID is assigned by the store on
// creation and the SKU is immutable afterwards.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
