package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storecore/catalog-api/internal/api/metrics"
	"github.com/storecore/catalog-api/internal/core/domain"
	"github.com/storecore/catalog-api/internal/core/ports"
)

const tokenIssuer = "store-api"

// AuthService verifies credentials against the credential store and issues
// HS256-signed bearer tokens. Tokens are self-contained: validity is decided
// by signature and expiry alone, with no server-side session state.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates the username/password pair and returns a signed token.
// Unknown user, disabled account, and wrong password all collapse into
// domain.ErrAuthenticationFailed; the distinction is only logged server-side.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrAuthenticationFailed
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAuthenticationFailed) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.logger.Warn().Str("username", username).Msg("login for unknown user")
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}

	if !user.Enabled {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("username", username).Msg("login for disabled user")
		return nil, domain.ErrAuthenticationFailed
	}

	// bcrypt performs a constant-time comparison of the derived hashes.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("username", username).Msg("login with wrong password")
		return nil, domain.ErrAuthenticationFailed
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Msg("issued bearer token")

	return &ports.LoginResult{
		Token:            token,
		ExpiresInSeconds: int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   tokenIssuer,
		"sub":   user.Username,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
		"roles": user.Roles,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
