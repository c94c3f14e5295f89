package domain

import "errors"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ErrAuthenticationFailed covers every credential failure: unknown username,
// disabled account, or password mismatch. Callers must not be able to tell
// these cases apart.
var ErrAuthenticationFailed = errors.New("authentication failed")

var ErrAccessDenied = errors.New("access denied")

// User models an authenticated actor. Accounts are provisioned out of band;
// this type is read-only within a request.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
	Enabled      bool     `json:"enabled"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
