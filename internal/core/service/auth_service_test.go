package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storecore/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(username, password string, roles []string, enabled bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	r.users[username] = &domain.User{
		ID:           int64(len(r.users) + 1),
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
		Enabled:      enabled,
	}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrAuthenticationFailed
	}
	clone := *u
	return &clone, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("admin", "s3cret", []string{domain.RoleAdmin, domain.RoleUser}, true)
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.ExpiresInSeconds != 3600 {
		t.Fatalf("expected 3600s expiry, got %d", result.ExpiresInSeconds)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
	if claims["iss"] != "store-api" {
		t.Fatalf("unexpected issuer: %v", claims["iss"])
	}
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 2 {
		t.Fatalf("unexpected roles claim: %v", claims["roles"])
	}
	exp, _ := claims.GetExpirationTime()
	iat, _ := claims.GetIssuedAt()
	if exp == nil || iat == nil || exp.Sub(iat.Time) != time.Hour {
		t.Fatalf("expected exp = iat + 1h, got iat=%v exp=%v", iat, exp)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("alice", "right", []string{domain.RoleUser}, true)
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "nobody", "pass"); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthService_Login_DisabledUser(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("bob", "pass", []string{domain.RoleUser}, false)
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "bob", "pass"); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for empty username, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for empty password, got %v", err)
	}
}

func TestAuthService_DefaultTTL(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("carol", "pass", []string{domain.RoleUser}, true)
	svc := NewAuthService(repo, "secret", 0, zerolog.Nop())

	result, err := svc.Login(context.Background(), "carol", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.ExpiresInSeconds != 3600 {
		t.Fatalf("expected default 3600s TTL, got %d", result.ExpiresInSeconds)
	}
}
