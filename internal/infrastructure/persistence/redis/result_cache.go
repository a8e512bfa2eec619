package redis

import (
	"context"
	"errors"
	"time"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/assessment"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	"github.com/dna-hub/dna-coaching-hub/pkg/circuitbreaker"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESULT CACHE (read-through decorator over assessment.ResultStore)
// The cache is an optimization layer: every failure path falls back to the
// underlying store, and a broken Redis never changes what callers observe
// beyond latency. A circuit breaker keeps a flapping Redis off the hot path.
// ══════════════════════════════════════════════════════════════════════════════

// ResultCache decorates an assessment.ResultStore with Redis caching.
type ResultCache struct {
	store   assessment.ResultStore
	cache   *Cache
	breaker *circuitbreaker.CircuitBreaker
	ttl     time.Duration

	// cooldownWindow mirrors the eligibility gate's retake window so the
	// cooldown marker expires exactly when the user becomes eligible again.
	cooldownWindow time.Duration
}

// NewResultCache creates a ResultCache over the given store.
func NewResultCache(store assessment.ResultStore, cache *Cache, cooldownWindow time.Duration, onStateChange func(name string, from, to circuitbreaker.State)) *ResultCache {
	return &ResultCache{
		store:          store,
		cache:          cache,
		breaker:        circuitbreaker.CacheBreaker(onStateChange, circuitbreaker.WithIsFailure(cacheFailure)),
		ttl:            TTLResultCache,
		cooldownWindow: cooldownWindow,
	}
}

// cacheFailure reports whether a cache error should count against the
// breaker. A miss is a normal outcome on every first-time read and must
// never trip the circuit; only transport-level errors do.
func cacheFailure(err error) bool {
	return !errors.Is(err, ErrCacheMiss)
}

// resultKey returns the latest-result cache key for a user.
func resultKey(userID shared.UserID) string {
	return PrefixResult + userID.String()
}

// cooldownKey returns the cooldown marker key for a user.
func cooldownKey(userID shared.UserID) string {
	return PrefixCooldown + userID.String()
}

// Save writes through to the store first; only a successful persist touches
// the cache. The cooldown marker carries the result creation time and lives
// for exactly one retake window.
func (r *ResultCache) Save(ctx context.Context, result *assessment.Result) error {
	if err := r.store.Save(ctx, result); err != nil {
		return err
	}

	_ = r.breaker.Execute(ctx, func(ctx context.Context) error {
		if err := r.cache.Set(ctx, resultKey(result.UserID), result, r.ttl); err != nil {
			return err
		}
		return r.cache.SetString(ctx, cooldownKey(result.UserID), result.CreatedAt.UTC().Format(time.RFC3339), r.cooldownWindow)
	})

	return nil
}

// GetLatest serves from Redis when possible and falls back to the store on
// a miss or any cache failure. Store results are written back best-effort.
func (r *ResultCache) GetLatest(ctx context.Context, userID shared.UserID) (*assessment.Result, error) {
	var cached assessment.Result
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.cache.Get(ctx, resultKey(userID), &cached)
	})
	if err == nil {
		return &cached, nil
	}

	result, storeErr := r.store.GetLatest(ctx, userID)
	if storeErr != nil {
		return nil, storeErr
	}

	if !errors.Is(err, ErrCacheMiss) {
		// Breaker open or Redis down; skip the write-back.
		return result, nil
	}

	_ = r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.cache.Set(ctx, resultKey(userID), result, r.ttl)
	})
	return result, nil
}

// CooldownUntil returns the instant the user's retake window ends, according
// to the cooldown marker. Returns ErrCacheMiss when no marker exists; the
// caller then decides via the store.
func (r *ResultCache) CooldownUntil(ctx context.Context, userID shared.UserID) (time.Time, error) {
	var createdAt time.Time
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		raw, err := r.cache.GetString(ctx, cooldownKey(userID))
		if err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return ErrCacheSerialization
		}
		createdAt = t
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return createdAt.Add(r.cooldownWindow), nil
}

// Invalidate drops a user's cached result and cooldown marker. Used by
// support tooling when an admin clears someone's history.
func (r *ResultCache) Invalidate(ctx context.Context, userID shared.UserID) error {
	return r.breaker.Execute(ctx, func(ctx context.Context) error {
		return r.cache.Delete(ctx, resultKey(userID), cooldownKey(userID))
	})
}
