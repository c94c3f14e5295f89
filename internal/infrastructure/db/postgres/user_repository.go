package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// UserRepository reads registered accounts from the users and user_roles
// tables. An unknown username maps to domain.ErrAuthenticationFailed so the
// caller cannot distinguish a missing account from a wrong password.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	err := r.db.QueryRowContext(ctx, findUserByUsername, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, findUserRoles, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		user.Roles = append(user.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}

	return &user, nil
}
