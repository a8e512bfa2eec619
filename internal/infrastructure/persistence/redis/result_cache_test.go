package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-hub/dna-coaching-hub/pkg/circuitbreaker"
)

func TestCacheFailure_MissIsNotAFailure(t *testing.T) {
	assert.False(t, cacheFailure(ErrCacheMiss))
	assert.False(t, cacheFailure(fmt.Errorf("get result: %w", ErrCacheMiss)))

	assert.True(t, cacheFailure(errors.New("connection refused")))
	assert.True(t, cacheFailure(ErrCacheSerialization))
}

func TestResultCache_BreakerIgnoresMisses(t *testing.T) {
	rc := NewResultCache(nil, nil, time.Hour, nil)
	ctx := context.Background()

	// A stream of first-time reads all missing must leave the circuit
	// closed; misses are ordinary traffic, not Redis failures.
	for i := 0; i < 10; i++ {
		err := rc.breaker.Execute(ctx, func(context.Context) error {
			return ErrCacheMiss
		})
		require.ErrorIs(t, err, ErrCacheMiss)
	}
	assert.True(t, rc.breaker.IsClosed())

	// Transport errors still trip it at the configured threshold.
	down := errors.New("connection refused")
	for i := 0; i < 3; i++ {
		err := rc.breaker.Execute(ctx, func(context.Context) error {
			return down
		})
		require.ErrorIs(t, err, down)
	}
	assert.True(t, rc.breaker.IsOpen())

	err := rc.breaker.Execute(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
