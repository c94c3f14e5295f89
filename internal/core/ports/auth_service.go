package ports

import "context"

// LoginResult carries the issued bearer token and its validity window.
type LoginResult struct {
	Token            string
	ExpiresInSeconds int64
}

// AuthService verifies credentials and issues signed bearer tokens.
type AuthService interface {
	// Login fails domain.ErrAuthenticationFailed for an unknown username, a
	// disabled account, or a password mismatch, without distinguishing them.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
