package ports

import (
	"context"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// UserRepository reads registered accounts from the credential store.
// Accounts are created out of band; no write operations are exposed here.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
