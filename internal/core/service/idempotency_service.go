package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storecore/catalog-api/internal/api/metrics"
	"github.com/storecore/catalog-api/internal/core/domain"
	"github.com/storecore/catalog-api/internal/core/ports"
)

// IdempotencyService admits each (key, owner) pair at most once.
//
// The existence check (cache first, then store) is only an optimization to
// avoid a pointless insert round-trip. Correctness rests on the storage-level
// uniqueness constraint: when two identical requests race, exactly one insert
// wins and the loser's constraint violation is remapped to
// domain.ErrIdempotencyKeyReused by the repository.
type IdempotencyService struct {
	repo   ports.IdempotencyRepository
	cache  ports.SeenKeyCache // optional, may be nil
	logger zerolog.Logger
}

func NewIdempotencyService(repo ports.IdempotencyRepository, cache ports.SeenKeyCache, logger zerolog.Logger) *IdempotencyService {
	return &IdempotencyService{repo: repo, cache: cache, logger: logger}
}

// Admit registers the idempotency key for the owner or fails.
// The admission commits independently of whatever mutation follows, so a key
// is consumed even when the business operation fails afterwards.
func (s *IdempotencyService) Admit(ctx context.Context, key, owner, method, path string) error {
	if strings.TrimSpace(key) == "" {
		metrics.IdempotencyRejectionsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidIdempotencyKey
	}
	if len(key) > domain.MaxIdempotencyKeyLen || len(owner) > domain.MaxOwnerLen {
		metrics.IdempotencyRejectionsTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: key or owner exceeds maximum length", domain.ErrInvalidIdempotencyKey)
	}

	// Advisory fast path: only a positive answer is trusted. Cache errors are
	// logged and ignored because the store below is the authority.
	if s.cache != nil {
		seen, err := s.cache.Seen(ctx, key, owner)
		if err != nil {
			s.logger.Warn().Err(err).Str("owner", owner).Msg("seen-key cache check failed")
		} else if seen {
			metrics.IdempotencyCacheTotal.WithLabelValues("hit").Inc()
			metrics.IdempotencyRejectionsTotal.WithLabelValues("reused").Inc()
			s.logger.Warn().Str("owner", owner).Msg("idempotency key already used")
			return fmt.Errorf("%w: %s", domain.ErrIdempotencyKeyReused, key)
		} else {
			metrics.IdempotencyCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	exists, err := s.repo.Exists(ctx, key, owner)
	if err != nil {
		return fmt.Errorf("idempotency existence check: %w", err)
	}
	if exists {
		metrics.IdempotencyRejectionsTotal.WithLabelValues("reused").Inc()
		s.logger.Warn().Str("owner", owner).Msg("idempotency key already used")
		return fmt.Errorf("%w: %s", domain.ErrIdempotencyKeyReused, key)
	}

	if err := s.repo.Insert(ctx, key, owner, method, path); err != nil {
		if errors.Is(err, domain.ErrIdempotencyKeyReused) {
			// Lost a race against a concurrent identical request.
			metrics.IdempotencyRejectionsTotal.WithLabelValues("reused").Inc()
			s.logger.Warn().Str("owner", owner).Msg("idempotency key raced and lost")
			return fmt.Errorf("%w: %s", domain.ErrIdempotencyKeyReused, key)
		}
		return fmt.Errorf("idempotency insert: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Mark(ctx, key, owner); err != nil {
			s.logger.Warn().Err(err).Str("owner", owner).Msg("seen-key cache mark failed")
		}
	}

	metrics.IdempotencyAdmissionsTotal.Inc()
	s.logger.Debug().Str("owner", owner).Str("method", method).Str("path", path).Msg("idempotency key admitted")
	return nil
}
