// Package identity implements caller resolution against Redis-backed
// sessions, with a bcrypt-verified master key for internal tooling.
package identity

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dna-hub/dna-coaching-hub/internal/domain/identity"
	"github.com/dna-hub/dna-coaching-hub/internal/domain/shared"
	redisinfra "github.com/dna-hub/dna-coaching-hub/internal/infrastructure/persistence/redis"
)

// masterTokenPrefix marks a token as a master-key attempt. Everything else
// is treated as a session token.
const masterTokenPrefix = "mk_"

// session is the stored session payload.
type session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Resolver implements identity.Resolver.
type Resolver struct {
	cache *redisinfra.Cache

	// masterKeyHash is the bcrypt hash of the master key. Empty disables
	// master-key access entirely.
	masterKeyHash []byte

	// masterUserID is the identity master-key callers act as.
	masterUserID shared.UserID
}

// NewResolver creates a Resolver. masterKeyHash may be empty to disable
// the master key path.
func NewResolver(cache *redisinfra.Cache, masterKeyHash string, masterUserID shared.UserID) *Resolver {
	return &Resolver{
		cache:         cache,
		masterKeyHash: []byte(masterKeyHash),
		masterUserID:  masterUserID,
	}
}

// Resolve maps a bearer token to a caller.
//
// Master keys are verified against the bcrypt hash, never stored or compared
// in plain text. Session tokens are looked up in Redis; an expired or
// unknown session resolves to unauthorized, and a Redis outage surfaces as
// service-unavailable so the transport can return 503 instead of 401.
func (r *Resolver) Resolve(ctx context.Context, token string) (identity.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return identity.Caller{}, shared.NewDomainError("identity", "Resolve", shared.ErrUnauthorized, "missing credentials")
	}

	if strings.HasPrefix(token, masterTokenPrefix) {
		return r.resolveMasterKey(token)
	}

	return r.resolveSession(ctx, token)
}

func (r *Resolver) resolveMasterKey(token string) (identity.Caller, error) {
	if len(r.masterKeyHash) == 0 {
		return identity.Caller{}, shared.NewDomainError("identity", "Resolve", shared.ErrUnauthorized, "master key access disabled")
	}
	if err := bcrypt.CompareHashAndPassword(r.masterKeyHash, []byte(token)); err != nil {
		return identity.Caller{}, shared.NewDomainError("identity", "Resolve", shared.ErrUnauthorized, "invalid master key")
	}
	return identity.Caller{UserID: r.masterUserID, Role: shared.RoleMaster}, nil
}

func (r *Resolver) resolveSession(ctx context.Context, token string) (identity.Caller, error) {
	if r.cache == nil {
		return identity.Caller{}, shared.NewDomainError("identity", "Resolve", shared.ErrServiceUnavailable, "session store not configured")
	}

	var s session
	err := r.cache.Get(ctx, redisinfra.PrefixSession+token, &s)
	if err != nil {
		if errors.Is(err, redisinfra.ErrCacheMiss) {
			return identity.Caller{}, shared.NewDomainError("identity", "Resolve", shared.ErrUnauthorized, "unknown or expired session")
		}
		return identity.Caller{}, shared.WrapError("identity", "Resolve", shared.ErrServiceUnavailable, "session store unavailable", err)
	}

	userID, err := shared.NewUserID(s.UserID)
	if err != nil {
		return identity.Caller{}, shared.WrapError("identity", "Resolve", shared.ErrUnauthorized, "corrupt session", err)
	}

	return identity.Caller{UserID: userID, Role: shared.ParseRole(s.Role)}, nil
}

// StoreSession persists a session for a caller. Used by whatever login flow
// the surrounding platform runs; exposed here so tests and tooling can mint
// sessions without reaching into Redis key layout.
func (r *Resolver) StoreSession(ctx context.Context, token string, caller identity.Caller) error {
	if r.cache == nil {
		return shared.NewDomainError("identity", "StoreSession", shared.ErrServiceUnavailable, "session store not configured")
	}
	return r.cache.Set(ctx, redisinfra.PrefixSession+token, session{
		UserID: caller.UserID.String(),
		Role:   caller.Role.String(),
	}, redisinfra.TTLSessionData)
}
